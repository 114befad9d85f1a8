package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chordsight/chordsight"
	"github.com/chordsight/chordsight/htmlimport"
	"github.com/chordsight/chordsight/store"
)

var (
	importTitle  string
	importArtist string
	importSave   bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Reconstruct a chord sheet from a text, HTML, or image file",
	Long: `Import reads the given file and reconstructs a structured chord sheet.
The input kind is chosen by extension: .txt (or anything unknown) is
treated as plain text, .html/.htm as a saved tab page, and common image
extensions as a scan (requires a build with -tags ocr).

The resulting document is printed as JSON; --save also stores it in the
sheet store.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importTitle, "title", "", "document title")
	importCmd.Flags().StringVar(&importArtist, "artist", "", "document artist")
	importCmd.Flags().BoolVar(&importSave, "save", false, "save the sheet to the store")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	filename := args[0]
	importer, err := importerFor(filename)
	if err != nil {
		return err
	}

	if importTitle == "" {
		base := filepath.Base(filename)
		importTitle = strings.TrimSuffix(base, filepath.Ext(base))
	}
	importer = importer.Title(importTitle).Artist(importArtist)
	if config.ChordThreshold > 0 {
		importer = importer.ChordThreshold(config.ChordThreshold)
	}
	if config.OCRLanguage != "" {
		importer = importer.OCRLanguage(config.OCRLanguage)
	}

	sheet, warnings, err := importer.Sheet()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", w.Stage, w.Message)
	}

	if importSave {
		s, err := store.Open(storePath())
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.Save(context.Background(), sheet)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved as sheet %d\n", id)
	}

	out, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// importerFor picks the input path for a file based on its extension.
func importerFor(filename string) (*chordsight.Importer, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		text, err := htmlimport.ExtractFile(filename)
		if err != nil {
			return nil, err
		}
		return chordsight.FromText(text), nil
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return chordsight.FromImage(data), nil
	default:
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		return chordsight.FromText(string(data)), nil
	}
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chordsight/chordsight/chord"
	"github.com/chordsight/chordsight/model"
	"github.com/chordsight/chordsight/store"
)

var (
	transposeSemitones int
	transposeWrite     bool
)

var transposeCmd = &cobra.Command{
	Use:   "transpose <sheet-id>",
	Short: "Transpose a stored sheet by a number of semitones",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranspose,
}

func init() {
	transposeCmd.Flags().IntVarP(&transposeSemitones, "semitones", "n", 0, "semitones to transpose by (may be negative)")
	transposeCmd.Flags().BoolVar(&transposeWrite, "write", false, "write the transposed sheet back to the store")
	_ = transposeCmd.MarkFlagRequired("semitones")
	rootCmd.AddCommand(transposeCmd)
}

func runTranspose(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sheet id %q", args[0])
	}

	s, err := store.Open(storePath())
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	sheet, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	transposeSheet(sheet, transposeSemitones)

	if transposeWrite {
		if err := s.Update(ctx, id, sheet); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "updated sheet %d\n", id)
	}

	out, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// transposeSheet transposes every assigned chord in place. Raw legacy
// chords and markers pass through unchanged.
func transposeSheet(sheet *model.ChordSheet, semitones int) {
	for si := range sheet.Sections {
		for li := range sheet.Sections[si].Lines {
			words := sheet.Sections[si].Lines[li].Words
			for wi := range words {
				if words[wi].Chord != nil {
					transposed := chord.Transpose(*words[wi].Chord, semitones)
					words[wi].Chord = &transposed
				}
			}
		}
	}
}

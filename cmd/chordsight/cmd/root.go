// Package cmd contains all CLI commands for the chordsight tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var cfgFile string

// Config is the CLI configuration, loaded from a YAML file. All fields
// are optional; zero values fall back to library defaults.
type Config struct {
	// Store is the path to the SQLite sheet store.
	Store string `yaml:"store"`

	// OCRLanguage is the Tesseract language string for image imports.
	OCRLanguage string `yaml:"ocr_language"`

	// ChordThreshold overrides the chord-line classification threshold.
	ChordThreshold float64 `yaml:"chord_threshold"`
}

var config Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chordsight",
	Short: "Reconstruct structured chord sheets from text, HTML, or scans",
	Long: `chordsight turns unstructured chord/lyric input into a structured
chord-sheet document: ordered sections, each with lines of word/chord
pairs.

Input can be pasted text (with or without [ch]/[tab] markup), a saved
HTML tab page, or a scanned image (when built with -tags ocr).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/chordsight/config.yaml)")
}

// initConfig reads the YAML config file if one exists. A missing file is
// not an error; flags and defaults cover everything.
func initConfig() {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		path = filepath.Join(home, ".config", "chordsight", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: cannot read config:", err)
		}
		return
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fmt.Fprintln(os.Stderr, "warning: cannot parse config:", err)
	}
}

// storePath returns the configured store location, defaulting to a file
// under the user's home directory.
func storePath() string {
	if config.Store != "" {
		return config.Store
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "chordsight.db"
	}
	return filepath.Join(home, ".local", "share", "chordsight", "sheets.db")
}

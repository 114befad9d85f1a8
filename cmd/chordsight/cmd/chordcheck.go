package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chordsight/chordsight/chord"
)

var chordSemitones int

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>",
	Short: "Validate and normalize a single chord symbol",
	Long: `Chord checks a symbol against the chord grammar and prints its
canonical spelling. OCR-style damage (Unicode accidentals, a clipped
"dim") is repaired first. With -n, the transposed chord is printed too.`,
	Args: cobra.ExactArgs(1),
	RunE: runChord,
}

func init() {
	chordCmd.Flags().IntVarP(&chordSemitones, "semitones", "n", 0, "also print the chord transposed by this many semitones")
	rootCmd.AddCommand(chordCmd)
}

func runChord(cmd *cobra.Command, args []string) error {
	c, ok := chord.ParseLenient(args[0])
	if !ok {
		return fmt.Errorf("%q is not a valid chord symbol", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), c.String())
	if chordSemitones != 0 {
		fmt.Fprintln(cmd.OutOrStdout(), chord.Transpose(c, chordSemitones).String())
	}
	return nil
}

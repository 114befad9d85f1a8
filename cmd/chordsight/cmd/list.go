package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chordsight/chordsight/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored chord sheets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(storePath())
		if err != nil {
			return err
		}
		defer s.Close()

		infos, err := s.List(context.Background())
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no sheets stored")
			return nil
		}
		for _, info := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
				info.ID, info.Title, info.Artist, info.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"fmt"

	"card-frame/pkg/export"

	"github.com/spf13/cobra"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print an approximate card to the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := source().Build()
		if err != nil {
			return fmt.Errorf("build card: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), export.Preview(node, previewWidth))
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 48, "preview width in terminal cells")
	rootCmd.AddCommand(previewCmd)
}

package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"

	"card-frame/pkg/export"
	"card-frame/pkg/layout"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	htmlOut    string
	htmlTitle  string
	htmlWidth  float64
	htmlHeight float64
)

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Write the card as a standalone HTML page",
	Long: `Solve the card at the given size and write it as one HTML file with
absolutely positioned boxes and the images inlined.

Examples:
  cardexport html --out card.html
  cardexport html --out card.html --width 1920 --height 1080 --no-contacts`,
	RunE: runHTML,
}

func runHTML(cmd *cobra.Command, args []string) error {
	node, err := source().Build()
	if err != nil {
		return fmt.Errorf("build card: %w", err)
	}
	frame := layout.Solve(node, layout.Rect{W: htmlWidth, H: htmlHeight}, nil)

	var buf bytes.Buffer
	if err := export.WriteHTML(&buf, frame, htmlTitle); err != nil {
		return err
	}

	if htmlOut == "" || htmlOut == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if dir := filepath.Dir(htmlOut); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(fs, htmlOut, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%gx%g)\n", htmlOut, htmlWidth, htmlHeight)
	return nil
}

func init() {
	htmlCmd.Flags().StringVarP(&htmlOut, "out", "o", "-", "output file, - for stdout")
	htmlCmd.Flags().StringVar(&htmlTitle, "title", "Business Card", "page title")
	htmlCmd.Flags().Float64Var(&htmlWidth, "width", 1080, "viewport width in px")
	htmlCmd.Flags().Float64Var(&htmlHeight, "height", 1920, "viewport height in px")
	rootCmd.AddCommand(htmlCmd)
}

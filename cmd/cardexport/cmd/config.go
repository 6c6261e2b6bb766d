package cmd

import (
	"fmt"

	"card-frame/pkg/settings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write a default card config file",
	Long: `Write the default card config to the --config path so it can be edited.
An existing file is left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exists, err := afero.Exists(fs, configPath)
		if err != nil {
			return err
		}
		if exists && !configForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
		}
		if err := settings.Save(fs, configPath, settings.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(configCmd)
}

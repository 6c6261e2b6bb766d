package cmd

import (
	"os"

	"card-frame/pkg/cardsource"
	"card-frame/pkg/settings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	resourcesDir string
	noContacts   bool

	// fs is swapped for an in-memory one in tests
	fs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "cardexport",
	Short: "Render the business card without a display",
	Long: `cardexport builds the same card the frame shows and writes it out
as a static HTML page or previews it in the terminal.

Available commands:
  html       Write the card as a standalone HTML page
  preview    Print an approximate card to the terminal
  config     Write a default card config file

Flags default to the CARD_* environment variables (a .env file is read first).`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	_ = godotenv.Load()
	env := settings.FromEnv()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", env.ConfigPath, "card config file")
	rootCmd.PersistentFlags().StringVar(&resourcesDir, "resources", env.ResourcesDir, "resource directory (strings.json and images/)")
	rootCmd.PersistentFlags().BoolVar(&noContacts, "no-contacts", !env.Contacts, "render the profile section only")
}

func source() cardsource.Source {
	env := settings.Env{ConfigPath: configPath, ResourcesDir: resourcesDir, Contacts: !noContacts}
	return cardsource.FromEnv(fs, env)
}

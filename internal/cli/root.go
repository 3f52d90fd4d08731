package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Guess-the-word game for your terminal",
	Long: `Hangman picks a secret word and gives you a bounded number of wrong
guesses to reveal it, one letter per turn. Wrong guesses draw the
gallows; run out and you lose.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("hangman version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

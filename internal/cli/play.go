package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rjhall/hangman/internal/config"
	"github.com/rjhall/hangman/internal/logging"
	"github.com/rjhall/hangman/internal/loop"
	"github.com/rjhall/hangman/internal/tui"
)

var (
	playAttempts int
	playNoColor  bool
	playConfig   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive game",
	Long: `Starts an interactive hangman session on the current terminal.
Rounds repeat until you decline another game; session statistics are
printed on exit.

Example:
  hangman play
  hangman play --attempts 8
  hangman play --config ~/.hangman.yml --no-color`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playAttempts, "attempts", "a", config.DefaultMaxAttempts, "wrong guesses allowed per round")
	playCmd.Flags().BoolVar(&playNoColor, "no-color", false, "disable ANSI colors")
	playCmd.Flags().StringVarP(&playConfig, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(playConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags beat file and environment.
	if cmd.Flags().Changed("attempts") {
		cfg.MaxAttempts = playAttempts
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = playNoColor
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	noColor := cfg.NoColor || !tui.IsTerminal(os.Stdout)
	term := tui.NewTerminal(os.Stdout, noColor)

	l := loop.New(loop.Options{
		In:       os.Stdin,
		Terminal: term,
		Config:   cfg,
		Logger:   logger,
	})

	res, err := l.Run()
	if err != nil {
		return err
	}

	logger.Debug().
		Stringer("reason", res.Reason).
		Int("plays", res.Stats.Plays).
		Msg("exiting")
	return nil
}

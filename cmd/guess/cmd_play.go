package main

import (
	"fmt"

	"guessnerd/cmd/guess/ui"
	"guessnerd/internal/config"
	"guessnerd/internal/game"
	"guessnerd/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Play flags, shared by the root command and play.
var (
	playMin  int
	playMax  int
	playSeed uint64
	playTUI  bool
)

func newPlayCmd() *cobra.Command {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game",
		Long: `Draws a secret between --min and --max (inclusive) and reads one guess
per line until it is found. Non-numeric lines are reported and asked again.

Example:
  guess play --max 1000
  guess play --tui`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
	addPlayFlags(playCmd.Flags())
	return playCmd
}

func addPlayFlags(fs *pflag.FlagSet) {
	fs.IntVar(&playMin, "min", game.DefaultRange.Min, "Smallest possible secret")
	fs.IntVar(&playMax, "max", game.DefaultRange.Max-1, "Largest possible secret")
	fs.Uint64Var(&playSeed, "seed", 0, "Seed for the secret (0 = random)")
	fs.BoolVar(&playTUI, "tui", false, "Use the full-screen terminal UI")
}

// applyPlayFlags copies explicitly set flags over the loaded config.
func applyPlayFlags(fs *pflag.FlagSet, c *config.Config) {
	if fs.Changed("min") {
		c.Game.Min = playMin
	}
	if fs.Changed("max") {
		c.Game.Max = playMax
	}
	if fs.Changed("seed") {
		c.Game.Seed = playSeed
	}
	if fs.Changed("tui") {
		c.UI.Mode = config.UIModePlain
		if playTUI {
			c.UI.Mode = config.UIModeTUI
		}
	}
}

// runPlay runs one session on the command's stdin and stdout.
func runPlay(cmd *cobra.Command, args []string) error {
	applyPlayFlags(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sessionLog := logging.Get(logging.CategorySession)
	session, err := game.NewSession(game.NewSource(cfg.Game.Seed), cfg.Game.Range(), game.WithLogger(sessionLog))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	msgs := cfg.Messages.ToGame()
	var summary game.Summary
	if cfg.UI.Mode == config.UIModeTUI {
		styles := ui.NewStyles(ui.ResolveTheme(cfg.UI.Theme))
		summary, err = ui.Run(session, msgs, styles, logging.Get(logging.CategoryUI),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()))
	} else {
		loop := game.NewLoop(session, cmd.InOrStdin(), cmd.OutOrStdout(), msgs, logging.Get(logging.CategoryInput))
		summary, err = loop.Run()
	}

	sessionLog.Info("session finished", zap.Object("summary", summary), zap.Error(err))
	return err
}

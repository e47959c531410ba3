package main

import (
	"fmt"

	"guessnerd/cmd/guess/ui"
	"guessnerd/internal/config"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var rulesPlain bool

const rulesTemplate = `# How to play

A secret number between **%d** and **%d** is drawn when the game starts.
It never changes until you find it.

Type one guess per line:

- *%s* means the secret is larger
- *%s* means the secret is smaller
- *%s* ends the game

Lines that are not a whole number are reported and do not count as a guess.
`

func newRulesCmd() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Show how to play",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}
	rulesCmd.Flags().BoolVar(&rulesPlain, "plain", false, "Render without colors")
	return rulesCmd
}

func runRules(cmd *cobra.Command, args []string) error {
	style := "notty"
	if !rulesPlain {
		style = "light"
		if ui.ResolveTheme(cfg.UI.Theme).IsDark {
			style = "dark"
		}
	}

	out, err := renderRules(cfg, style)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderRules renders the rules for c with a glamour standard style.
func renderRules(c *config.Config, style string) (string, error) {
	msgs := c.Messages.ToGame()
	md := fmt.Sprintf(rulesTemplate, c.Game.Min, c.Game.Max, msgs.TooSmall, msgs.TooBig, msgs.Win)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render rules: %w", err)
	}
	return out, nil
}

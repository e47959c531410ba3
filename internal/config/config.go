package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"guessnerd/internal/game"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all guess configuration.
type Config struct {
	// Secret range and generator
	Game GameConfig `yaml:"game"`

	// Text printed by the loop
	Messages MessagesConfig `yaml:"messages"`

	// Front end selection
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig configures the secret. Both bounds are inclusive here; the
// game works with the closed-open Range returned by Range().
type GameConfig struct {
	Min  int    `yaml:"min" env:"GUESS_MIN"`
	Max  int    `yaml:"max" env:"GUESS_MAX"`
	Seed uint64 `yaml:"seed,omitempty" env:"GUESS_SEED"` // 0 = random
}

// Range converts the inclusive bounds to a game.Range. Validate rejects a
// Max that would overflow.
func (g GameConfig) Range() game.Range {
	return game.Range{Min: g.Min, Max: g.Max + 1}
}

// MessagesConfig overrides the loop's text. Empty fields keep the defaults.
type MessagesConfig struct {
	Banner   string `yaml:"banner,omitempty"`
	Prompt   string `yaml:"prompt,omitempty"`
	Echo     string `yaml:"echo,omitempty"` // %d = the guess
	TooSmall string `yaml:"too_small,omitempty"`
	TooBig   string `yaml:"too_big,omitempty"`
	Win      string `yaml:"win,omitempty"`
	Invalid  string `yaml:"invalid,omitempty"` // %v = the parse error
}

// ToGame returns the messages with defaults applied.
func (m MessagesConfig) ToGame() game.Messages {
	return game.Messages{
		Banner:   m.Banner,
		Prompt:   m.Prompt,
		Echo:     m.Echo,
		TooSmall: m.TooSmall,
		TooBig:   m.TooBig,
		Win:      m.Win,
		Invalid:  m.Invalid,
	}.WithDefaults()
}

// UI modes and themes.
const (
	UIModePlain = "plain"
	UIModeTUI   = "tui"

	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	ValidUIModes   = []string{UIModePlain, UIModeTUI}
	ValidThemes    = []string{ThemeAuto, ThemeLight, ThemeDark}
	ValidLogFormat = []string{"text", "json"}
)

// UIConfig selects the front end.
type UIConfig struct {
	Mode  string `yaml:"mode" env:"GUESS_UI_MODE"`
	Theme string `yaml:"theme" env:"GUESS_THEME"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	msgs := game.DefaultMessages()
	return &Config{
		Game: GameConfig{
			Min: game.DefaultRange.Min,
			Max: game.DefaultRange.Max - 1,
		},
		Messages: MessagesConfig{
			Banner:   msgs.Banner,
			Prompt:   msgs.Prompt,
			Echo:     msgs.Echo,
			TooSmall: msgs.TooSmall,
			TooBig:   msgs.TooBig,
			Win:      msgs.Win,
			Invalid:  msgs.Invalid,
		},
		UI: UIConfig{
			Mode:  UIModePlain,
			Theme: ThemeAuto,
		},
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

// DefaultConfigPath returns .guess/config.yaml under the working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".guess", "config.yaml")
	}
	return filepath.Join(cwd, ".guess", "config.yaml")
}

// Load loads configuration from a YAML file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies GUESS_* environment variables on top of c.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Game.Max == math.MaxInt {
		return fmt.Errorf("invalid game range: max must be below %d", math.MaxInt)
	}
	if err := c.Game.Range().Validate(); err != nil {
		return fmt.Errorf("invalid game range %d..%d: %w", c.Game.Min, c.Game.Max, err)
	}

	if !slices.Contains(ValidUIModes, c.UI.Mode) {
		return fmt.Errorf("invalid ui mode: %s (valid: %v)", c.UI.Mode, ValidUIModes)
	}
	if !slices.Contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	if err := checkVerb("echo", c.Messages.Echo, "%d"); err != nil {
		return err
	}
	if err := checkVerb("invalid", c.Messages.Invalid, "%v"); err != nil {
		return err
	}

	return c.Logging.Validate()
}

// checkVerb requires msg to hold exactly one directive, verb. Escaped %%
// is allowed anywhere. Empty messages fall back to the defaults.
func checkVerb(field, msg, verb string) error {
	if msg == "" {
		return nil
	}
	rest := strings.ReplaceAll(msg, "%%", "")
	if strings.Count(rest, "%") != 1 || !strings.Contains(rest, verb) {
		return fmt.Errorf("messages.%s must contain exactly one %s and no other %% directives: %q", field, verb, msg)
	}
	return nil
}

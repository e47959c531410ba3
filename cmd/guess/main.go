package main

import (
	"fmt"
	"os"

	"guessnerd/internal/config"
	"guessnerd/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.3.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// newRootCmd builds the command tree. Running guess without a subcommand
// plays a game.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "guess",
		Short: "guess - find the secret number",
		Long: `guess draws a secret number and tells you whether each guess is
too small or too big until you find it.

Run without arguments to play in the terminal.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfigAndLogging,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: runPlay,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default .guess/config.yaml)")
	addPlayFlags(rootCmd.Flags())

	rootCmd.AddCommand(
		newPlayCmd(),
		newRulesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "guess %s\n", version)
		},
	}
}

// skipConfigLoad marks commands that must run even when the config file is
// unreadable. They get the defaults.
const skipConfigLoad = "skip-config-load"

// loadConfigAndLogging loads the config file and sets up logging.
func loadConfigAndLogging(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	loaded := config.DefaultConfig()
	if cmd.Annotations[skipConfigLoad] == "" {
		var err error
		if loaded, err = config.Load(path); err != nil {
			return err
		}
	}

	// --verbose wins over the file: debug level, straight to stderr
	if verbose {
		loaded.Logging.DebugMode = true
		loaded.Logging.Level = "debug"
		loaded.Logging.File = ""
	}

	if err := logging.Initialize(loaded.Logging.Options()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	logger = logging.Get(logging.CategoryBoot)
	logger.Debug("config loaded", zap.String("path", path), zap.String("command", cmd.Name()))
	return nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wizard-spelldash/config"
)

var (
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "spelldash",
	Short: "Wizard SpellDash - a dashboard of wizard spells from the D&D 5e API",
	Long: `spelldash samples the D&D 5e reference API, keeps the spells of one class
and shows them with summary cards, a search box and a level filter.

Run without arguments to start the web dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadDotEnv()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = zapcore.DebugLevel
		}

		// The terminal dashboard owns stdout/stderr
		if cmd.Name() == tuiCmd.Name() {
			logger, err = newFileLogger(cfg, "spelldash.log")
		} else {
			logger, err = newLogger(cfg)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: serve the web dashboard
		return runServe(cmd, args)
	},
}

// loadDotEnv loads .env in development (ignores error if file doesn't exist).
// In production, variables should be set directly.
func loadDotEnv() {
	if os.Getenv("ENV") == "production" {
		return
	}
	// Overload so .env values win over the shell environment
	if err := godotenv.Overload(".env"); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}
}

func loggerConfig(cfg *config.Config) zap.Config {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zcfg
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return loggerConfig(cfg).Build()
}

func newFileLogger(cfg *config.Config, path string) (*zap.Logger, error) {
	zcfg := loggerConfig(cfg)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

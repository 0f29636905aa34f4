// Command deboxer extracts covariance matrices from BOXER-format tapes.
package main

import (
	"fmt"
	"os"

	"github.com/sskutnik/deBOXER/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "deboxer.yaml"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	// flag overrides; empty means "use the config value"
	tape, requests, output, sqlite string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "deboxer",
		Short: "Extract covariance matrices from BOXER tapes",
		Long: `deboxer reads a BOXER-format covariance tape (as written by NJOY's
COVR module), looks up the reactions named in a request list and writes
their dense covariance matrices, together with each material's energy-group
boundaries, to a text dataset and optionally to SQLite.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfigPath, "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.tape, "tape", "t", "", "BOXER tape (default from config: "+config.DefaultTape+")")

	extract := &cobra.Command{
		Use:   "extract",
		Short: "Decode the requested reactions into a dataset",
		Long: `Reads the request list (one "type mat mt [mat1 mt1]" per line, ended by
"0 0") and writes every decoded reaction. Reactions missing from the tape are
reported and skipped; any other decoding error aborts the run.`,
		Args: cobra.NoArgs,
		RunE: a.runExtract,
	}
	extract.Flags().StringVarP(&a.requests, "requests", "r", "", "request list (default from config: "+config.DefaultRequests+")")
	extract.Flags().StringVarP(&a.output, "output", "o", "", "output dataset (default from config: "+config.DefaultOutput+")")
	extract.Flags().StringVar(&a.sqlite, "sqlite", "", "also export to this SQLite database")

	list := &cobra.Command{
		Use:   "list",
		Short: "List every record header on the tape",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}

	initCfg := &cobra.Command{
		Use:   "init-config",
		Short: "Write the effective configuration to the --config path",
		Args:  cobra.NoArgs,
		RunE:  a.runInitConfig,
	}

	root.AddCommand(extract, list, initCfg)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	for dst, v := range map[*string]string{
		&cfg.Tape: a.tape, &cfg.Requests: a.requests, &cfg.Output: a.output, &cfg.SQLite: a.sqlite,
	} {
		if v != "" {
			*dst = v
		}
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = newLogger(cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("configuration",
		zap.String("command", cmd.Name()),
		zap.String("tape", cfg.Tape),
		zap.String("requests", cfg.Requests),
		zap.String("output", cfg.Output),
		zap.String("sqlite", cfg.SQLite))

	return nil
}

func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = lc.Format
	if lc.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

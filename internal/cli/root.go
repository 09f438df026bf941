// Package cli implements the tempseries command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/sartorproj/tempseries/internal/config"
	"github.com/sartorproj/tempseries/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var logger = logging.MustGetLogger("tempseries.cli")

// Version is set at build time.
var Version = "dev"

// app carries state shared by the subcommands of one root command.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
}

// NewRootCmd builds the tempseries command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "tempseries",
		Short: "Descriptive statistics for a series of temperatures",
		Long: `tempseries builds a temperature series from command arguments or from
delimited text on standard input and reports statistics about it.
Temperatures are in degrees Celsius and may not be below -273.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("format", config.FormatText, "output format (text, json)")
	flags.String("column", "value", "name of the value column when reading stdin")
	flags.String("delimiter", ",", "field delimiter when reading stdin")
	flags.Bool("header", true, "whether stdin input starts with a header row")

	mustBindPFlag(a.v, config.KeyLogLevel, flags.Lookup("log-level"))
	mustBindPFlag(a.v, config.KeyOutputFormat, flags.Lookup("format"))
	mustBindPFlag(a.v, config.KeyValueColumn, flags.Lookup("column"))
	mustBindPFlag(a.v, config.KeyDelimiter, flags.Lookup("delimiter"))
	mustBindPFlag(a.v, config.KeyHasHeader, flags.Lookup("header"))

	rootCmd.AddCommand(
		newStatsCmd(a),
		newClosestCmd(a),
		newFilterCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// mustBindPFlag binds key to flag and panics if the flag is missing.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := execute(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and logs a failure before returning it.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		logger.Errorw("command failed", "error", err)
	}
	return err
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	a.cfg = cfg

	logger.Debugw("configuration loaded",
		"file", a.v.ConfigFileUsed(),
		"format", cfg.Format,
		"column", cfg.Input.ValueColumn,
		"delimiter", fmt.Sprintf("%q", cfg.Input.Delimiter),
	)
	return nil
}

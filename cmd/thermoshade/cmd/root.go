// Package cmd provides the CLI commands for thermoshade.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thatsimonsguy/thermoshade/internal/api"
	"github.com/thatsimonsguy/thermoshade/internal/config"
	"github.com/thatsimonsguy/thermoshade/internal/datadog"
	"github.com/thatsimonsguy/thermoshade/internal/env"
	"github.com/thatsimonsguy/thermoshade/internal/logging"
	"github.com/thatsimonsguy/thermoshade/internal/scale"
)

var (
	configFile string
	logLevel   string

	scaleName string
	value     float64
	asJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "thermoshade",
	Short: "Convert temperatures and show their warmth gradient",
	Long: `thermoshade converts a temperature between Celsius, Fahrenheit, Kelvin
and Rankine, and shows the three-color background gradient for it.

Negative values can be passed with --value, or after "--".

Examples:
  thermoshade convert 212 --scale f
  thermoshade gradient --value -12 --scale c
  thermoshade domain --json
  thermoshade session`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		datadog.Close()
	},
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(domainCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(sessionCmd)
}

func initConfig() {
	cfg := config.Load(configFile, logLevel)
	env.Cfg = &cfg

	logging.Init(cfg.LogLevel, cfg.LogFile)
	datadog.InitMetrics()

	log.Debug().
		Str("config_file", cfg.ConfigFile).
		Str("default_scale", cfg.DefaultScale).
		Msg("Configuration loaded")
}

func addScaleFlag(c *cobra.Command) {
	c.Flags().StringVarP(&scaleName, "scale", "s", "", "scale of the input: celsius, fahrenheit, kelvin, rankine (default from config)")
}

func addValueFlags(c *cobra.Command) {
	addScaleFlag(c)
	c.Flags().Float64Var(&value, "value", 0, "temperature value")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON")
}

// selectedScale falls back to the configured default when --scale is absent.
func selectedScale() (scale.Scale, error) {
	if scaleName == "" {
		return env.Cfg.Scale(), nil
	}
	return scale.Parse(scaleName)
}

func valueInput(c *cobra.Command, args []string) (float64, scale.Scale, error) {
	s, err := selectedScale()
	if err != nil {
		return 0, "", err
	}

	switch {
	case c.Flags().Changed("value"):
		return value, s, nil
	case len(args) == 1:
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return 0, "", fmt.Errorf("%q is not a number", args[0])
		}
		return v, s, nil
	default:
		return env.Cfg.DefaultValue, s, nil
	}
}

// reportError writes err as an api.ErrorResponse when --json is set, so the
// output stays parseable, and keeps cobra from printing it a second time.
func reportError(c *cobra.Command, err error) error {
	c.SilenceErrors = asJSON
	if asJSON {
		if werr := api.WriteError(c.OutOrStdout(), err); werr != nil {
			return werr
		}
	}
	return err
}

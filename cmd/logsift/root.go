// Package cmd implements the logsift command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/minjae-dev/logsift/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "logsift",
		Short: "logsift parses, filters and analyzes log files",
		Long: `logsift is a log triage tool: it normalizes JSON, JSON-lines and
free-text logs into a uniform record shape, filters them by severity, and
derives summaries, error clusters, temporal distributions and rule-based
diagnostics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.logsift.yaml)")
}

// initConfig loads defaults from the config file and LOGSIFT_* environment
// variables. A missing config file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".logsift")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("logsift")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// Execute runs the CLI. Any failure is reported on stderr with a non-zero
// exit; success exits zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openInput opens a log file, mapping a missing file onto the distinct
// not-found diagnostic.
func openInput(path string) (io.ReadCloser, error) {
	rc, err := source.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	return rc, nil
}

// stringOrConfig returns the flag value, falling back to the config key.
func stringOrConfig(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}

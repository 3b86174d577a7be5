// Package cmd provides the petal command-line interface.
//
// Configuration precedence, highest first: command-line flags, PETAL_*
// environment variables (PETAL_HOST, PETAL_PORT, ...), then the project's
// petal.yml. The project file is authoritative for project state; flags
// and environment only override per-invocation settings.
package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/logging"
	"github.com/petal-dev/petal/internal/registry"
	"github.com/petal-dev/petal/internal/registry/builtin"
)

var rootCmd = &cobra.Command{
	Use:   "petal",
	Short: "Scaffold and maintain daisyUI component libraries in Go web projects",
	Long: `Petal bootstraps daisyUI/Tailwind-styled UI component libraries inside
Go web projects and keeps them in sync.

Quick Start:
  petal init                 Initialize a project in the current directory
  petal add button           Add a component from the catalog
  petal list                 Show available and installed components
  petal serve                Start the development server with live reload
  petal build                Compile the production stylesheet`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().StringP("project", "p", ".", "project root directory")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initEnv() {
	viper.SetEnvPrefix("PETAL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

// projectRoot returns the project directory the command operates on.
func projectRoot() string {
	return viper.GetString("project")
}

// configPath returns the project configuration file location.
func configPath() string {
	return filepath.Join(projectRoot(), config.FileName)
}

// newLogger builds the logger configured by --log-level / PETAL_LOG_LEVEL.
func newLogger() logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(viper.GetString("log-level"))
	return logging.NewLogger(cfg)
}

// newRegistry constructs the component registry and installs the bundled
// catalog. Registration is an explicit startup step; a failure here is a
// petal bug, not a user error.
func newRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := builtin.Install(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// loadConfig loads the project configuration, applying environment and
// flag overrides for the per-invocation server settings.
func loadConfig() (*config.ProjectConfig, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}
	if viper.IsSet("host") {
		cfg.Host = viper.GetString("host")
	}
	if viper.IsSet("port") {
		cfg.Port = viper.GetInt("port")
	}
	if viper.IsSet("live") {
		cfg.Live = viper.GetBool("live")
	}
	return cfg, nil
}

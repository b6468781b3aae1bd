/*
Copyright © 2025 The SIGAP Air Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/internal/ioconfig"
	"github.com/sigapair/airlab/internal/iofs"
	"github.com/sigapair/airlab/internal/iologger"
	app "github.com/sigapair/airlab/pkg"
	"github.com/sigapair/airlab/pkg/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

// getRootCmd returns the root command with all subcommands attached.
// Every call creates a new command tree.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "airlab",
		Short:   "Airlab runs lab analyses of citizen water-quality reports",
		Long: `Airlab is the laboratory analysis engine of the water-quality
reporting portal. Lab officers submit measured water parameters, airlab
scores them into a safety verdict, stores the analysis, marks the report
as finished and notifies the citizen who sent it.

Commands:
  - create:   create the database schema
  - migrate:  update the schema of an existing database
  - report:   add or list citizen reports
  - analyze:  run analyses from a YAML file
  - show:     print the stored analysis of a report
  - stats:    print water quality statistics of an area
  - optimize: clean up and tune the database

The database is PostgreSQL by default. Set store.driver to sqlite to keep
everything in a local file.

Configuration precedence (highest to lowest):
  1. Environment variables (AIRLAB_*)
  2. Config file (~/.config/airlab/config.yaml)
  3. Built-in defaults

Environment variables use underscores for nested fields
(database.host -> AIRLAB_DATABASE_HOST).`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "airlab version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for airlab")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getReportCmd(),
		getAnalyzeCmd(),
		getShowCmd(),
		getStatsCmd(),
		getOptimizeCmd(),
	)

	return rootCmd
}

func bootstrap(_ *cobra.Command, _ []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Log with defaults until the user's settings are known.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Store.Driver,
		"notify", cfg.Notify.Transport,
	)
	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	defer iologger.Close()
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

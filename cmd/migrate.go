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
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate database schema to latest version",
		Long: `Migrate updates the database schema to the latest version.

Missing tables, columns and indexes are added, existing data is kept.
Afterwards the size of each table is printed together with the number
of reports whose lab results are incomplete.

On PostgreSQL GORM AutoMigrate does the work. On SQLite new columns are
added with ALTER TABLE. Neither deletes columns or tables.

Use this command after updating airlab, for example to add the
schema_version column of lab_results to an older database.

Examples:
  airlab migrate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args)
		},
	}

	return migrateCmd
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer b.Close()

	hasTables, err := b.schema.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !hasTables {
		gn.Warn("The database has no airlab tables. Run <em>airlab create</em> first.")
		return nil
	}

	gn.Info("Migrating schema to the latest version...")
	if err = b.schema.Migrate(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	c, err := b.store.Counts(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Schema is up to date: %s reports, %s analyzed, %s lab result rows, %s notifications",
		humanize.Comma(c.Reports), humanize.Comma(c.Analyzed),
		humanize.Comma(c.LabResults), humanize.Comma(c.Notifications))
	if c.Partial > 0 {
		gn.Warn("%s reports have incomplete lab results. "+
			"Run <em>airlab optimize</em> to remove them.",
			humanize.Comma(c.Partial))
	}
	return nil
}

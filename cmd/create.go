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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the airlab database schema from scratch.

The reports, lab_results and notifications tables are created with GORM
AutoMigrate on PostgreSQL and with generated DDL on SQLite. Other tables
of a database shared with the portal are not touched.

When airlab tables exist already, the command shows how many reports and
analyses would be lost and asks for confirmation. Use --force to drop
them without asking.

Examples:
  airlab create
  airlab create --force
  airlab create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(
	cmd *cobra.Command,
	_ []string,
	force bool,
) error {
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

	if hasTables {
		if !force {
			warnDataLoss(ctx, b)
			if !confirm(cmd.InOrStdin()) {
				gn.Info("Aborted. No changes made.")
				return nil
			}
		}
		gn.Info("Dropping airlab tables...")
		if err = b.schema.DropAllTables(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	gn.Info("Creating schema...")
	if err = b.schema.Create(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Database schema is ready. Next steps:")
	gn.Info("  - register reports with <em>airlab report add</em>")
	gn.Info("  - analyze them with <em>airlab analyze -i analyses.yaml</em>")
	return nil
}

// warnDataLoss tells what recreating the schema would delete. Tables of
// an older layout may not support the counts, then only the general
// warning is shown.
func warnDataLoss(ctx context.Context, b *backend) {
	gn.Warn("The database already contains airlab tables.")
	c, err := b.store.Counts(ctx)
	if err != nil {
		slog.Warn("Cannot count existing rows", "error", err)
		gn.Warn("Creating the schema drops them together with their data.")
		return
	}
	gn.Warn("Creating the schema deletes %s reports, %s analyses and %s notifications.",
		humanize.Comma(c.Reports), humanize.Comma(c.Analyzed),
		humanize.Comma(c.Notifications))
}

// confirm asks the user to continue and reads the answer from r.
func confirm(r io.Reader) bool {
	fmt.Fprint(os.Stderr, "\nDo you want to continue? (yes/no): ")
	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && response == "" {
		gn.Warn("Failed to read user input")
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}

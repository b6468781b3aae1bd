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

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/internal/iooptimize"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
func getOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Clean up and tune the database",
		Long: `Optimize cleans up the airlab database.

This command:
  1. Removes lab results and notifications of deleted reports
  2. Removes partial analyses without an overall_safety row
  3. Runs VACUUM and ANALYZE to update statistics

Stored analyses of existing reports are never changed.

Examples:
  airlab optimize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, args)
		},
	}
	return optimizeCmd
}

func runOptimize(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	b, err := openBackend(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer b.Close()

	if err = b.ready(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Optimization in progress...")
	if err = iooptimize.NewOptimizer(b.store).Optimize(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Database optimization complete.")
	return nil
}

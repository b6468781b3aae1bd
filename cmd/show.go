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
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/sigapair/airlab/pkg/labresult"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var asJSON bool

	showCmd := &cobra.Command{
		Use:   "show <report-id>",
		Short: "Print the stored analysis of a report",
		Long: `Print the stored lab analysis of a report.

The analysis is rebuilt from its lab_results rows. Issues are derived
again from the stored values.

Examples:
  airlab show 2f0c7a4e
  airlab show 2f0c7a4e --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args[0], asJSON)
		},
	}

	showCmd.Flags().BoolVarP(&asJSON, "json", "j", false,
		"print the analysis as JSON")

	return showCmd
}

func runShow(w io.Writer, reportID string, asJSON bool) error {
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

	batch, err := b.service(cfg).Result(ctx, reportID)
	if errors.Is(err, labresult.ErrNoAnalysis) {
		gn.Warn("Report <em>%s</em> has no lab analysis yet", reportID)
		return nil
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if asJSON {
		enc := gnfmt.GNjson{Pretty: true}
		res, err := enc.Encode(batch)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(res))
		return nil
	}

	writeBatch(w, batch, cfg.Location())
	return nil
}

func writeBatch(w io.Writer, b labresult.Batch, loc *time.Location) {
	v := b.Verdict
	fmt.Fprintf(w, "Report:    %s\n", b.ReportID)
	fmt.Fprintf(w, "Tested at: %s\n", b.TestedAt.In(loc).Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Officer:   %s\n", orDash(b.OfficerID))
	fmt.Fprintf(w, "Puskesmas: %s\n", orDash(b.PuskesmasID))
	fmt.Fprintf(w, "Verdict:   %s (score %d)\n", v.Level, v.Score)
	if len(v.Issues) > 0 {
		fmt.Fprintf(w, "Issues:    %s\n", strings.Join(v.Issues, "; "))
	}
	if b.Notes != "" {
		fmt.Fprintf(w, "Notes:     %s\n", b.Notes)
	}
	if missing := b.Params.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i := range missing {
			names[i] = string(missing[i])
		}
		fmt.Fprintf(w, "Not measured: %s\n", strings.Join(names, ", "))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

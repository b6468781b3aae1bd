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
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/sigapair/airlab/pkg/stats"
	"github.com/spf13/cobra"
)

type statsFlags struct {
	area   string
	from   string
	to     string
	asJSON bool
}

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	var f statsFlags

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print water quality statistics of an area",
		Long: `Print water quality statistics of analyzed reports.

The summary gives the share of safe, warning and danger verdicts among
analyzed reports created between --from and --to (both inclusive, dates
in the configured timezone). The trend counts reports of the area on each
of the last 7 days. Problem areas are the locations with most reports.

Examples:
  airlab stats
  airlab stats --area Coblong --from 2025-05-01 --to 2025-05-31
  airlab stats -a Coblong --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.OutOrStdout(), f)
		},
	}

	fl := statsCmd.Flags()
	fl.StringVarP(&f.area, "area", "a", "", "kecamatan, all areas when empty")
	fl.StringVar(&f.from, "from", "", "first day, YYYY-MM-DD")
	fl.StringVar(&f.to, "to", "", "last day, YYYY-MM-DD")
	fl.BoolVarP(&f.asJSON, "json", "j", false, "print statistics as JSON")

	return statsCmd
}

// query converts flags to a stats query. The last day is included.
func (f statsFlags) query(loc *time.Location) (stats.Query, error) {
	res := stats.Query{Area: f.area}
	from, err := parseDay(f.from, loc)
	if err != nil {
		return res, err
	}
	to, err := parseDay(f.to, loc)
	if err != nil {
		return res, err
	}
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}
	res.Window = stats.Window{Start: from, End: to}
	return res, nil
}

func runStats(w io.Writer, f statsFlags) error {
	loc := cfg.Location()
	q, err := f.query(loc)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

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

	d, err := b.service(cfg).Dashboard(ctx, q, time.Now())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if f.asJSON {
		res, err := gnfmt.GNjson{Pretty: true}.Encode(d)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(res))
		return nil
	}

	writeDashboard(w, d)
	return nil
}

func writeDashboard(w io.Writer, d stats.Dashboard) {
	area := d.Query.Area
	if area == "" {
		area = "all areas"
	}
	s := d.Summary
	fmt.Fprintf(w, "Area: %s\n", area)
	fmt.Fprintf(w, "Analyzed reports: %s (not analyzed: %s)\n",
		humanize.Comma(int64(s.Total)), humanize.Comma(int64(d.Unanalyzed)))
	fmt.Fprintf(w, "  safe:    %3d%% (%s)\n", s.GoodPct, humanize.Comma(int64(s.Good)))
	fmt.Fprintf(w, "  warning: %3d%% (%s)\n", s.WarningPct, humanize.Comma(int64(s.Warning)))
	fmt.Fprintf(w, "  danger:  %3d%% (%s)\n", s.DangerPct, humanize.Comma(int64(s.Danger)))

	fmt.Fprintln(w, "\nReports per day:")
	for _, v := range d.Trend {
		fmt.Fprintf(w, "  %s  %s\n", v.Label, humanize.Comma(int64(v.Count)))
	}

	if len(d.ProblemAreas) > 0 {
		fmt.Fprintln(w, "\nProblem areas:")
		for i, v := range d.ProblemAreas {
			fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, v.Area, humanize.Comma(int64(v.Count)))
		}
	}
}

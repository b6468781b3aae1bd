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
	"text/tabwriter"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/sigapair/airlab/internal/ioinput"
	"github.com/sigapair/airlab/pkg/analysis"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// getAnalyzeCmd returns the analyze command.
func getAnalyzeCmd() *cobra.Command {
	var input string

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run lab analyses from a YAML file",
		Long: `Run lab analyses of reports listed in a YAML file.

For every analysis airlab validates the measurements, scores them,
replaces the stored lab results of the report, marks the report as
selesai and notifies the citizen. Reports are processed concurrently
(jobs_number in the configuration).

Input file:
  officer_id: officer-7
  puskesmas_id: pkm-coblong
  analyses:
    - report_id: 2f0c7a4e
      notes: sampled at the public tap
      parameters:
        bacteria_count: 150
        ph_level: 7.2
        turbidity: 1.5
        chlorine: 0.3
        heavy_metals: false
        e_coli_present: false
        total_dissolved_solids: 120

Parameters that are left out were not measured. They are scored with
clean-water baseline values and reported as warnings.

Examples:
  airlab analyze -i analyses.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd.OutOrStdout(), input)
		},
	}

	analyzeCmd.Flags().StringVarP(&input, "input", "i", "",
		"YAML file with analyses")
	_ = analyzeCmd.MarkFlagRequired("input")

	return analyzeCmd
}

func runAnalyze(w io.Writer, input string) error {
	f, err := ioinput.Load(input)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(f.Analyses) == 0 {
		gn.Warn("No analyses found in <em>%s</em>", input)
		return nil
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

	svc := b.service(cfg)
	start := time.Now()
	outcomes := analyzeAll(ctx, svc, f.Analyses, cfg.JobsNumber)

	writeOutcomes(w, outcomes)

	var ok, partial, failed int
	for _, o := range outcomes {
		switch o.Status {
		case analysis.Success:
			ok++
		case analysis.Partial:
			partial++
		default:
			failed++
		}
	}
	gn.Info("Analyzed %s reports in %s: %s succeeded, %s partial, %s failed",
		humanize.Comma(int64(len(outcomes))),
		gnfmt.TimeString(time.Since(start).Seconds()),
		humanize.Comma(int64(ok)),
		humanize.Comma(int64(partial)),
		humanize.Comma(int64(failed)),
	)

	if failed > 0 {
		return AnalysisFailedError(failed, len(outcomes))
	}
	return nil
}

// analyzeAll runs analyses with up to jobs workers. Outcomes keep the
// order of the input.
func analyzeAll(
	ctx context.Context,
	svc *analysis.Service,
	list []ioinput.Analysis,
	jobs int,
) []analysis.Outcome {
	res := make([]analysis.Outcome, len(list))

	bar := pb.Full.Start(len(list))
	bar.Set("prefix", "Analyzing reports: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, a := range list {
		g.Go(func() error {
			res[i] = svc.Analyze(ctx, analysis.Request{
				ReportID:    a.ReportID,
				Params:      a.Parameters,
				OfficerID:   a.OfficerID,
				PuskesmasID: a.PuskesmasID,
				Notes:       a.Notes,
			})
			bar.Increment()
			return nil
		})
	}
	_ = g.Wait()
	return res
}

func writeOutcomes(w io.Writer, outcomes []analysis.Outcome) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REPORT\tSTATUS\tSCORE\tLEVEL\tDETAILS")
	for _, o := range outcomes {
		score, level := "-", "-"
		if o.Status != analysis.Failure {
			score = fmt.Sprintf("%d", o.Verdict.Score)
			level = string(o.Verdict.Level)
		}
		details := fmt.Sprintf("%d issues", len(o.Verdict.Issues))
		if o.Err != nil {
			details = o.Err.Error()
			if o.Retryable {
				details += " (retryable)"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			o.ReportID, o.Status, score, level, details)
	}
	tw.Flush()
}

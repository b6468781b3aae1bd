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
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/google/uuid"
	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// getReportCmd returns the report command with its subcommands.
func getReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Manage citizen reports",
		Long: `Manage citizen water-quality reports.

Reports are normally created by the portal. These commands register
reports for imports and local testing, and list reports of an area.`,
	}

	reportCmd.AddCommand(getReportAddCmd(), getReportListCmd())
	return reportCmd
}

type reportFlags struct {
	id          string
	userID      string
	puskesmasID string
	kecamatan   string
	location    string
}

func getReportAddCmd() *cobra.Command {
	var f reportFlags

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new report",
		Long: `Register a new pending report.

A random report id is generated unless --id is given.

Examples:
  airlab report add --user u-17 --kecamatan Coblong \
    --location "Jl. Dago 12, Coblong"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReportAdd(cmd.OutOrStdout(), f)
		},
	}

	fl := addCmd.Flags()
	fl.StringVar(&f.id, "id", "", "report id, generated when empty")
	fl.StringVarP(&f.userID, "user", "u", "", "id of the submitting citizen")
	fl.StringVarP(&f.puskesmasID, "puskesmas", "p", "", "id of the responsible puskesmas")
	fl.StringVarP(&f.kecamatan, "kecamatan", "k", "", "district of the sample")
	fl.StringVarP(&f.location, "location", "l", "", "address of the water source")

	return addCmd
}

func (f reportFlags) report(now time.Time) (lifecycle.Report, error) {
	res := lifecycle.Report{
		ID:          strings.TrimSpace(f.id),
		UserID:      strings.TrimSpace(f.userID),
		PuskesmasID: strings.TrimSpace(f.puskesmasID),
		Kecamatan:   strings.TrimSpace(gnlib.FixUtf8(f.kecamatan)),
		Location:    strings.TrimSpace(gnlib.FixUtf8(f.location)),
		Status:      lifecycle.Pending,
		CreatedAt:   now.UTC().Truncate(time.Microsecond),
	}
	if res.UserID == "" {
		return res, ReportFlagError("user")
	}
	if res.Kecamatan == "" {
		return res, ReportFlagError("kecamatan")
	}
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	return res, nil
}

func runReportAdd(w io.Writer, f reportFlags) error {
	r, err := f.report(time.Now())
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

	if err = b.store.AddReport(ctx, r); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Report <em>%s</em> registered", r.ID)
	fmt.Fprintln(w, r.ID)
	return nil
}

func getReportListCmd() *cobra.Command {
	var area string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reports, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReportList(cmd.OutOrStdout(), area)
		},
	}
	listCmd.Flags().StringVarP(&area, "area", "a", "",
		"kecamatan of the reports, all areas when empty")
	return listCmd
}

func runReportList(w io.Writer, area string) error {
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

	reports, err := b.store.GetReportsByArea(ctx, area)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	writeReports(w, reports, cfg.Location())
	return nil
}

func writeReports(w io.Writer, reports []lifecycle.Report, loc *time.Location) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tKECAMATAN\tCREATED\tLOCATION")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Status, r.Kecamatan,
			r.CreatedAt.In(loc).Format("2006-01-02 15:04"), r.Location)
	}
	tw.Flush()
}

package analysis

import (
	"context"
	"time"

	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/stats"
)

// Dashboard builds the statistics of an area. The summary and problem
// areas cover reports matching q. The trend covers the area's reports of
// the last stats.TrendDays days before now, whatever the window of q.
func (s *Service) Dashboard(
	ctx context.Context,
	q stats.Query,
	now time.Time,
) (stats.Dashboard, error) {
	res := stats.Dashboard{Query: q}

	reports, err := s.reports.GetReportsByArea(ctx, q.Area)
	if err != nil {
		return res, err
	}

	var matched []lifecycle.Report
	ids := make([]string, 0, len(reports))
	for _, r := range reports {
		if q.Match(r) {
			matched = append(matched, r)
			ids = append(ids, r.ID)
		}
	}

	rows, err := s.store.ReadGrouped(ctx, ids)
	if err != nil {
		return res, err
	}

	res.Summary, err = stats.Aggregate(ctx, matched, rows, q, s.jobs)
	if err != nil {
		return res, err
	}
	res.Unanalyzed = len(matched) - res.Summary.Total
	res.Trend = stats.Trend(reports, now, s.loc)
	res.ProblemAreas = stats.ProblemAreas(matched, stats.DefaultProblemAreas)
	return res, nil
}

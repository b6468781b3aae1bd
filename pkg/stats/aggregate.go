package stats

import (
	"context"
	"math"

	"github.com/sigapair/airlab/pkg/labresult"
	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/safety"
	"golang.org/x/sync/errgroup"
)

// Aggregate computes the summary of reports matching q. Rows of every
// report are decoded concurrently by up to jobs workers. Reports whose
// rows do not decode to a verdict are left out of the total. The only
// error returned is the cancellation of ctx.
func Aggregate(
	ctx context.Context,
	reports []lifecycle.Report,
	rowsByReport map[string][]labresult.ParameterRow,
	q Query,
	jobs int,
) (Summary, error) {
	var res Summary
	if jobs < 1 {
		jobs = 1
	}

	var selected []lifecycle.Report
	for _, r := range reports {
		if q.Match(r) {
			selected = append(selected, r)
		}
	}

	levels := make([]safety.Level, len(selected))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, r := range selected {
		rows := rowsByReport[r.ID]
		if len(rows) == 0 {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := labresult.Decode(rows)
			if err != nil {
				return nil
			}
			levels[i] = b.Verdict.Level
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	for _, l := range levels {
		switch l {
		case safety.Safe:
			res.Good++
		case safety.Warning:
			res.Warning++
		case safety.Danger:
			res.Danger++
		default:
			continue
		}
		res.Total++
	}

	res.GoodPct = percent(res.Good, res.Total)
	res.WarningPct = percent(res.Warning, res.Total)
	res.DangerPct = percent(res.Danger, res.Total)
	return res, nil
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

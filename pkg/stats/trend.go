package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/sigapair/airlab/pkg/lifecycle"
)

// Trend counts reports created on each of the last TrendDays calendar
// days in loc, oldest day first. Today is the day of now.
func Trend(reports []lifecycle.Report, now time.Time, loc *time.Location) []DayCount {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	res := make([]DayCount, TrendDays)
	for i := range res {
		day := today.AddDate(0, 0, i-(TrendDays-1))
		res[i] = DayCount{Day: day, Label: day.Format("2006-01-02")}
	}

	for _, r := range reports {
		t := r.CreatedAt.In(loc)
		for i := range res {
			start := res[i].Day
			end := start.AddDate(0, 0, 1)
			if !t.Before(start) && t.Before(end) {
				res[i].Count++
				break
			}
		}
	}
	return res
}

// ProblemAreas returns locations with the most reports. A location is
// the text before the first comma of a report location. Ties keep the
// order in which locations were first seen. A limit below 1 means
// DefaultProblemAreas.
func ProblemAreas(reports []lifecycle.Report, limit int) []AreaCount {
	if limit < 1 {
		limit = DefaultProblemAreas
	}

	idx := make(map[string]int)
	var res []AreaCount
	for _, r := range reports {
		area := AreaKey(r.Location)
		if area == "" {
			continue
		}
		if i, ok := idx[area]; ok {
			res[i].Count++
			continue
		}
		idx[area] = len(res)
		res = append(res, AreaCount{Area: area, Count: 1})
	}

	slices.SortStableFunc(res, func(a, b AreaCount) int {
		return b.Count - a.Count
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

// AreaKey is the trimmed part of a location before its first comma.
func AreaKey(location string) string {
	area, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(area)
}

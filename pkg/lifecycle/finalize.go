package lifecycle

import (
	"fmt"
	"time"

	"github.com/gnames/gnuuid"
	"github.com/sigapair/airlab/pkg/safety"
)

// Transition is the effect of a finished analysis on its report.
type Transition struct {
	NewStatus    Status
	Notification Notification
}

type tone struct {
	title string
	msg   string
	kind  NotificationType
}

var tones = map[safety.Level]tone{
	safety.Safe: {
		title: "Water is safe",
		msg:   "Lab analysis of the water sample from %s is complete. The water meets safety standards.",
		kind:  Info,
	},
	safety.Warning: {
		title: "Water quality warning",
		msg:   "Lab analysis of the water sample from %s found parameters above safe limits. Boil water before drinking.",
		kind:  Warning,
	},
	safety.Danger: {
		title: "Unsafe water detected",
		msg:   "Lab analysis of the water sample from %s found serious contamination. Do not drink this water and contact your puskesmas.",
		kind:  Urgent,
	},
}

// Finalize computes the transition of an analyzed report. The new status
// is always Selesai: it means the report was analyzed, whatever the
// verdict. The notification goes to the submitter of the report.
func Finalize(r Report, v safety.Verdict, now time.Time) Transition {
	t, ok := tones[v.Level]
	if !ok {
		t = tones[safety.LevelFromScore(v.Score)]
	}

	n := Notification{
		ID:          NotificationID(r.ID, now),
		UserID:      r.UserID,
		PuskesmasID: r.PuskesmasID,
		ReportID:    r.ID,
		Title:       t.title,
		Message:     fmt.Sprintf(t.msg, r.Location),
		Type:        t.kind,
		IsRead:      false,
		CreatedAt:   now,
	}

	return Transition{NewStatus: Selesai, Notification: n}
}

// NotificationID is a name-based UUID of a report and the moment of its
// analysis. Retrying the same finalization gives the same id.
func NotificationID(reportID string, at time.Time) string {
	key := reportID + "|" + at.UTC().Format(time.RFC3339Nano)
	return gnuuid.New(key).String()
}

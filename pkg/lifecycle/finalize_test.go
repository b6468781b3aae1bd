package lifecycle_test

import (
	"testing"
	"time"

	"github.com/sigapair/airlab/pkg/lifecycle"
	"github.com/sigapair/airlab/pkg/safety"
	"github.com/stretchr/testify/assert"
)

func TestFinalize(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	report := lifecycle.Report{
		ID:          "rep-1",
		UserID:      "user-1",
		PuskesmasID: "pkm-1",
		Kecamatan:   "Cibeunying",
		Location:    "Jl. Merdeka 10, Bandung",
		Status:      lifecycle.Diproses,
	}

	tests := []struct {
		msg   string
		level safety.Level
		score int
		title string
		kind  lifecycle.NotificationType
	}{
		{"safe", safety.Safe, 100, "Water is safe", lifecycle.Info},
		{"warning", safety.Warning, 65, "Water quality warning", lifecycle.Warning},
		{"danger", safety.Danger, 35, "Unsafe water detected", lifecycle.Urgent},
		{"unknown level", "", 10, "Unsafe water detected", lifecycle.Urgent},
	}

	for _, v := range tests {
		verdict := safety.Verdict{Level: v.level, Score: v.score}
		tr := lifecycle.Finalize(report, verdict, now)
		n := tr.Notification
		assert.Equal(t, lifecycle.Selesai, tr.NewStatus, v.msg)
		assert.Equal(t, v.title, n.Title, v.msg)
		assert.Equal(t, v.kind, n.Type, v.msg)
		assert.Contains(t, n.Message, report.Location, v.msg)
		assert.Equal(t, "user-1", n.UserID, v.msg)
		assert.Equal(t, "pkm-1", n.PuskesmasID, v.msg)
		assert.Equal(t, "rep-1", n.ReportID, v.msg)
		assert.False(t, n.IsRead, v.msg)
		assert.Equal(t, now, n.CreatedAt, v.msg)
	}
}

func TestNotificationID(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	id := lifecycle.NotificationID("rep-1", now)
	assert.Len(t, id, 36)
	assert.Equal(t, id, lifecycle.NotificationID("rep-1", now))
	assert.Equal(t, id, lifecycle.NotificationID("rep-1", now.In(time.FixedZone("WIB", 7*3600))))
	assert.NotEqual(t, id, lifecycle.NotificationID("rep-2", now))
	assert.NotEqual(t, id, lifecycle.NotificationID("rep-1", now.Add(time.Millisecond)))
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []lifecycle.Status{
		lifecycle.Pending, lifecycle.Diproses, lifecycle.Selesai, lifecycle.Ditolak,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, lifecycle.Status("done").IsValid())
}

func TestStatusCanFinish(t *testing.T) {
	tests := []struct {
		status lifecycle.Status
		want   bool
	}{
		{lifecycle.Pending, true},
		{lifecycle.Diproses, true},
		{lifecycle.Selesai, true},
		{lifecycle.Ditolak, false},
		{"", false},
		{"done", false},
	}
	for _, v := range tests {
		assert.Equal(t, v.want, v.status.CanFinish(), string(v.status))
	}
}

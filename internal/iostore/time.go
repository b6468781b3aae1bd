package iostore

import (
	"fmt"
	"time"
)

// timeLayouts are the text forms of timestamps SQLite may return.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// sqlTime scans timestamps returned as time.Time, text or unix seconds.
// Results are in UTC.
type sqlTime struct {
	time.Time
}

// Scan implements sql.Scanner.
func (t *sqlTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case int64:
		t.Time = time.Unix(v, 0).UTC()
	case nil:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
	return nil
}

func (t *sqlTime) parse(s string) error {
	for _, l := range timeLayouts {
		if tm, err := time.Parse(l, s); err == nil {
			t.Time = tm.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse time %q", s)
}

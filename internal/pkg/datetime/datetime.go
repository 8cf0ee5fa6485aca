// Package datetime handles the zone-less timestamps the salon backend emits.
package datetime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the backend's LocalDateTime wire form.
const Layout = "2006-01-02T15:04:05"

var layouts = []string{
	Layout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.RFC3339Nano,
}

// Local is a wall-clock timestamp without a zone.
type Local struct {
	time.Time
}

// Of wraps t, dropping sub-second precision.
func Of(t time.Time) Local {
	return Local{Time: t.Truncate(time.Second)}
}

// Parse parses any accepted layout.
func Parse(s string) (Local, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Local{Time: t}, nil
		}
	}
	return Local{}, fmt.Errorf("datetime: cannot parse %q", s)
}

// String formats using Layout
func (l Local) String() string {
	if l.IsZero() {
		return ""
	}
	return l.Format(Layout)
}

func (l Local) MarshalJSON() ([]byte, error) {
	if l.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(l.Format(Layout))
}

func (l *Local) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*l = Local{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	if s == "" {
		*l = Local{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

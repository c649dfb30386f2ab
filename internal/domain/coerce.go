package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the wire and file format of bug timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CoerceSeverity converts a loosely typed severity into an integer.
// Numbers and numeric strings are truncated toward zero and clamped to the
// int range; anything else is 0.
func CoerceSeverity(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	}
	f, ok := severityFloat(v)
	if !ok {
		return 0
	}
	return clampInt(math.Trunc(f))
}

// CoerceMinSeverity converts a severity threshold into the smallest integer
// m' such that severity >= m' holds exactly when severity >= m for integer
// severities. Fractions round up and the result is clamped to the int range.
func CoerceMinSeverity(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	}
	f, ok := severityFloat(v)
	if !ok {
		return 0
	}
	return clampInt(math.Ceil(f))
}

func severityFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// clampInt converts an integral float to int, saturating at the int bounds.
func clampInt(f float64) int {
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if f <= float64(math.MinInt) {
		return math.MinInt
	}
	return int(f)
}

// ParseCreatedAt accepts an RFC 3339 / ISO-8601 string or an epoch-millis
// number. The boolean is false when the value is missing or unparseable.
func ParseCreatedAt(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x.UTC(), !x.IsZero()
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(x)).UTC(), true
	case int64:
		return time.UnixMilli(x).UTC(), true
	case int:
		return time.UnixMilli(int64(x)).UTC(), true
	case json.Number:
		ms, err := x.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return ParseCreatedAt(ms)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// FormatTimestamp renders t in TimestampLayout, or "" for the zero time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

type bugJSON struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    any      `json:"severity"`
	CreatedAt   any      `json:"createdAt"`
	Labels      []string `json:"labels"`
	Creator     *Creator `json:"creator,omitempty"`
}

// MarshalJSON writes createdAt in TimestampLayout and labels as [] when empty.
func (b Bug) MarshalJSON() ([]byte, error) {
	labels := b.Labels
	if labels == nil {
		labels = []string{}
	}
	var created any
	if !b.CreatedAt.IsZero() {
		created = FormatTimestamp(b.CreatedAt)
	}
	return json.Marshal(bugJSON{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Severity:    b.Severity,
		CreatedAt:   created,
		Labels:      labels,
		Creator:     b.Creator,
	})
}

// UnmarshalJSON coerces severity and createdAt so files holding numeric
// strings or epoch-millis timestamps load unchanged.
func (b *Bug) UnmarshalJSON(data []byte) error {
	var raw bugJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	created, _ := ParseCreatedAt(raw.CreatedAt)
	labels := raw.Labels
	if labels == nil {
		labels = []string{}
	}
	*b = Bug{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Severity:    CoerceSeverity(raw.Severity),
		CreatedAt:   created,
		Labels:      labels,
		Creator:     raw.Creator,
	}
	return nil
}

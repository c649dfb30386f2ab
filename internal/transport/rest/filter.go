package rest

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// parseFilter builds a BugFilter from query parameters. Absent or empty
// parameters stay unset. Numeric parameters are coerced the same way
// severities are: non-numeric text becomes 0. A fractional minSeverity
// rounds up so the integer threshold keeps exactly the same bugs.
func parseFilter(q url.Values) domain.BugFilter {
	f := domain.BugFilter{
		Txt:     q.Get("txt"),
		Labels:  q.Get("labels"),
		SortBy:  q.Get("sortBy"),
		SortDir: 1,
	}

	if v := strings.TrimSpace(q.Get("minSeverity")); v != "" {
		f.MinSeverity = domain.CoerceMinSeverity(v)
	}
	if v := strings.TrimSpace(q.Get("sortDir")); v != "" && domain.CoerceSeverity(v) == domain.SortDesc {
		f.SortDir = domain.SortDesc
	}
	if v := strings.TrimSpace(q.Get("pageIdx")); v != "" {
		p := domain.CoerceSeverity(v)
		f.PageIdx = &p
	}
	return f
}

// Package query implements the bug list pipeline: text, severity and label
// filters, then an optional stable sort, then an optional fixed-size page.
//
// Evaluate is pure. It never mutates its input and performs no I/O, so the
// HTTP handlers and the CLI preview produce identical results for the same
// snapshot.
package query

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// PageSize is the number of bugs per page.
const PageSize = 3

// Evaluate applies f to records and returns a fresh slice.
// The only error it returns wraps domain.ErrInvalidFilter.
func Evaluate(records []domain.Bug, f domain.BugFilter) ([]domain.Bug, error) {
	out, err := Filter(records, f)
	if err != nil {
		return nil, err
	}
	Sort(out, f)
	return Page(out, f.PageIdx), nil
}

// Filter runs the three filter stages and returns the matching records in
// their original relative order.
func Filter(records []domain.Bug, f domain.BugFilter) ([]domain.Bug, error) {
	var re *regexp.Regexp
	if f.Txt != "" {
		compiled, err := regexp.Compile("(?i)" + f.Txt)
		if err != nil {
			return nil, fmt.Errorf("%w: txt %q: %v", domain.ErrInvalidFilter, f.Txt, err)
		}
		re = compiled
	}

	out := make([]domain.Bug, 0, len(records))
	for _, b := range records {
		if re != nil && !re.MatchString(b.Title) {
			continue
		}
		if f.MinSeverity > 0 && b.Severity < f.MinSeverity {
			continue
		}
		if f.Labels != "" && !b.HasLabel(f.Labels) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Sort stable-sorts bugs in place by f.SortBy. Unknown keys leave the order
// untouched.
func Sort(bugs []domain.Bug, f domain.BugFilter) {
	compare := comparator(f.SortBy)
	if compare == nil {
		return
	}
	if f.Descending() {
		asc := compare
		compare = func(a, b domain.Bug) int { return asc(b, a) }
	}
	slices.SortStableFunc(bugs, compare)
}

func comparator(sortBy string) func(a, b domain.Bug) int {
	switch sortBy {
	case domain.SortByTitle:
		return func(a, b domain.Bug) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case domain.SortBySeverity:
		return func(a, b domain.Bug) int {
			return cmp.Compare(a.Severity, b.Severity)
		}
	case domain.SortByCreatedAt:
		// The zero time is the earliest instant, so missing dates sort oldest.
		return func(a, b domain.Bug) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	default:
		return nil
	}
}

// Page slices out page *pageIdx. A nil index returns bugs unchanged; a
// negative or out-of-range index returns an empty, non-nil slice.
func Page(bugs []domain.Bug, pageIdx *int) []domain.Bug {
	if pageIdx == nil {
		return bugs
	}
	p := *pageIdx
	if p < 0 || p >= PageCount(len(bugs)) {
		return []domain.Bug{}
	}
	start := p * PageSize
	end := min(start+PageSize, len(bugs))
	return bugs[start:end:end]
}

// PageCount returns how many pages total records span.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

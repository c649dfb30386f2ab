package domain

// Sortable bug fields.
const (
	SortByTitle     = "title"
	SortBySeverity  = "severity"
	SortByCreatedAt = "createdAt"
)

// SortDesc is the only SortDir value that reverses ordering.
const SortDesc = -1

// BugFilter holds the optional criteria of a bug list query.
// Zero values mean "unset" for every field; PageIdx nil means unpaginated.
type BugFilter struct {
	Txt         string
	MinSeverity int
	Labels      string
	SortBy      string
	SortDir     int
	PageIdx     *int
}

// Descending reports whether the sort direction is reversed.
func (f BugFilter) Descending() bool {
	return f.SortDir == SortDesc
}

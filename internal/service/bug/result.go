package bug

import "github.com/heartmarshall/bugtracker/internal/domain"

// QueryResult is one evaluated page of bugs.
type QueryResult struct {
	Bugs     []domain.Bug
	Total    int // matches before pagination
	PageSize int
}

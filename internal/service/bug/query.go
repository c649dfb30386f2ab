package bug

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bugtracker/internal/domain"
	"github.com/heartmarshall/bugtracker/internal/query"
)

// Query returns the bugs selected by f in presentation order.
func (s *Service) Query(ctx context.Context, f domain.BugFilter) ([]domain.Bug, error) {
	all, err := s.bugs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("bug.Query list: %w", err)
	}
	return query.Evaluate(all, f)
}

// QueryPage is Query plus the number of matches before pagination.
func (s *Service) QueryPage(ctx context.Context, f domain.BugFilter) (*QueryResult, error) {
	all, err := s.bugs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("bug.QueryPage list: %w", err)
	}

	matched, err := query.Filter(all, f)
	if err != nil {
		return nil, err
	}
	query.Sort(matched, f)

	return &QueryResult{
		Bugs:     query.Page(matched, f.PageIdx),
		Total:    len(matched),
		PageSize: query.PageSize,
	}, nil
}

// GetBug returns a single bug.
func (s *Service) GetBug(ctx context.Context, id string) (*domain.Bug, error) {
	return s.bugs.GetByID(ctx, id)
}

// BugsByCreator returns the bugs filed by userID in store order.
func (s *Service) BugsByCreator(ctx context.Context, userID string) ([]domain.Bug, error) {
	all, err := s.bugs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("bug.BugsByCreator list: %w", err)
	}

	out := make([]domain.Bug, 0)
	for _, b := range all {
		if b.CreatedBy(userID) {
			out = append(out, b)
		}
	}
	return out, nil
}

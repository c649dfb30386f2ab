package bug

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

// SeedDemo inserts the demo bugs when the store holds none and returns how
// many were inserted.
func (s *Service) SeedDemo(ctx context.Context) (int, error) {
	existing, err := s.bugs.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("bug.SeedDemo list: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	demo := domain.DemoBugs(s.now())
	for i := range demo {
		if _, err := s.bugs.Create(ctx, &demo[i]); err != nil {
			return i, fmt.Errorf("bug.SeedDemo create %q: %w", demo[i].Title, err)
		}
	}

	s.log.InfoContext(ctx, "demo bugs seeded", slog.Int("count", len(demo)))
	return len(demo), nil
}

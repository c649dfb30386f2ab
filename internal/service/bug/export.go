package bug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// ExportPDF renders every stored bug, ignoring any filter, to w.
func (s *Service) ExportPDF(ctx context.Context, w io.Writer) error {
	all, err := s.bugs.List(ctx)
	if err != nil {
		return fmt.Errorf("bug.ExportPDF list: %w", err)
	}

	if err := s.renderer.Render(w, all); err != nil {
		return fmt.Errorf("bug.ExportPDF render: %w", err)
	}

	s.log.InfoContext(ctx, "bugs exported", slog.Int("count", len(all)))
	return nil
}

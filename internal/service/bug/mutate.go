package bug

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bugtracker/internal/domain"
	"github.com/heartmarshall/bugtracker/pkg/ctxutil"
)

// CreateBug stores a new bug. The authenticated caller, if any, is recorded
// as its creator.
func (s *Service) CreateBug(ctx context.Context, input BugInput) (*domain.Bug, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b := &domain.Bug{}
	input.apply(b)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.now().UTC()
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnauthorized
			}
			return nil, fmt.Errorf("bug.CreateBug get creator: %w", err)
		}
		b.Creator = user.AsCreator()
	}

	created, err := s.bugs.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("bug.CreateBug: %w", err)
	}

	s.log.InfoContext(ctx, "bug created",
		slog.String("bug_id", created.ID),
		slog.Int("severity", created.Severity))
	return created, nil
}

// UpdateBug replaces the mutable fields of an existing bug. The id and the
// creator are kept, and so is createdAt unless the input supplies one.
func (s *Service) UpdateBug(ctx context.Context, id string, input BugInput) (*domain.Bug, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.bugs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(ctx, existing) {
		return nil, domain.ErrForbidden
	}

	next := existing.Clone()
	input.apply(&next)

	updated, err := s.bugs.Replace(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("bug.UpdateBug: %w", err)
	}
	return updated, nil
}

// DeleteBug removes a bug.
func (s *Service) DeleteBug(ctx context.Context, id string) error {
	existing, err := s.bugs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(ctx, existing) {
		return domain.ErrForbidden
	}

	if err := s.bugs.Delete(ctx, id); err != nil {
		return fmt.Errorf("bug.DeleteBug: %w", err)
	}

	s.log.InfoContext(ctx, "bug deleted", slog.String("bug_id", id))
	return nil
}

// canModify reports whether the caller may change b. Bugs without a creator
// are open to everyone.
func canModify(ctx context.Context, b *domain.Bug) bool {
	if b.Creator == nil || ctxutil.IsAdminCtx(ctx) {
		return true
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && b.CreatedBy(userID)
}

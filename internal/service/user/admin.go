package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bugtracker/internal/domain"
	"github.com/heartmarshall/bugtracker/pkg/ctxutil"
)

// ListUsers returns every user in registration order (admin only).
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user and revokes their refresh tokens (admin only).
// Bugs the user filed keep their creator back-reference.
func (s *Service) DeleteUser(ctx context.Context, targetUserID string) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == targetUserID {
		return domain.NewValidationError("id", "cannot delete yourself")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeAllByUser(txCtx, targetUserID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		if err := s.users.Delete(txCtx, targetUserID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("target_user_id", targetUserID),
		slog.String("admin_id", callerID),
	)
	return nil
}

// PromoteUser grants administrator rights to the user with username. It is
// an operator command and does not consult the caller's role. The returned
// flag is false when the user already was an administrator.
func (s *Service) PromoteUser(ctx context.Context, username string) (*domain.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, domain.NewValidationError("username", "required")
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, false, fmt.Errorf("user.PromoteUser: %w", err)
	}
	if u.IsAdmin {
		return u, false, nil
	}

	if err := s.users.SetAdmin(ctx, u.ID, true); err != nil {
		return nil, false, fmt.Errorf("user.PromoteUser: %w", err)
	}
	u.IsAdmin = true

	s.log.InfoContext(ctx, "user promoted to admin",
		slog.String("user_id", u.ID),
		slog.String("username", u.Username),
	)
	return u, true, nil
}

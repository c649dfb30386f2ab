package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bugtracker/internal/domain"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type creatorBugs interface {
	BugsByCreator(ctx context.Context, userID string) ([]domain.Bug, error)
}

// UserHandler serves the /users endpoints.
type UserHandler struct {
	users userService
	bugs  creatorBugs
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, bugs creatorBugs, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, bugs: bugs, log: logger.With("handler", "user")}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"_id": id})
}

// Bugs handles GET /users/{id}/bugs.
func (h *UserHandler) Bugs(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.users.GetUser(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	bugs, err := h.bugs.BugsByCreator(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, bugs)
}

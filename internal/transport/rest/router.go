package rest

import (
	"net/http"

	"github.com/heartmarshall/bugtracker/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Bugs   *BugHandler
	Users  *UserHandler
}

// NewRouter mounts every endpoint. authLimit wraps the credential endpoints
// and may be nil.
func NewRouter(h Handlers, authLimit func(scope string) middleware.Middleware) *http.ServeMux {
	limited := func(scope string, fn http.HandlerFunc) http.Handler {
		if authLimit == nil {
			return fn
		}
		return authLimit(scope)(fn)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", limited("register", h.Auth.Register))
	mux.Handle("POST /auth/login", limited("login", h.Auth.Login))
	mux.Handle("POST /auth/refresh", limited("refresh", h.Auth.Refresh))
	mux.Handle("POST /auth/logout", middleware.RequireAuth(http.HandlerFunc(h.Auth.Logout)))

	mux.HandleFunc("GET /bugs", h.Bugs.List)
	mux.HandleFunc("POST /bugs", h.Bugs.Create)
	mux.HandleFunc("GET /bugs/export", h.Bugs.Export)
	mux.HandleFunc("GET /bugs/{id}", h.Bugs.Get)
	mux.HandleFunc("PUT /bugs/{id}", h.Bugs.Update)
	mux.HandleFunc("DELETE /bugs/{id}", h.Bugs.Delete)

	mux.Handle("GET /users", middleware.RequireAdmin(http.HandlerFunc(h.Users.List)))
	mux.Handle("GET /users/me", middleware.RequireAuth(http.HandlerFunc(h.Users.Me)))
	mux.HandleFunc("GET /users/{id}", h.Users.Get)
	mux.Handle("DELETE /users/{id}", middleware.RequireAdmin(http.HandlerFunc(h.Users.Delete)))
	mux.HandleFunc("GET /users/{id}/bugs", h.Users.Bugs)

	return mux
}

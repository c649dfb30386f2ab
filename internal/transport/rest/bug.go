package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/bugtracker/internal/domain"
	bugsvc "github.com/heartmarshall/bugtracker/internal/service/bug"
)

type bugService interface {
	QueryPage(ctx context.Context, f domain.BugFilter) (*bugsvc.QueryResult, error)
	GetBug(ctx context.Context, id string) (*domain.Bug, error)
	CreateBug(ctx context.Context, input bugsvc.BugInput) (*domain.Bug, error)
	UpdateBug(ctx context.Context, id string, input bugsvc.BugInput) (*domain.Bug, error)
	DeleteBug(ctx context.Context, id string) error
	ExportPDF(ctx context.Context, w io.Writer) error
}

// BugHandler serves the /bugs endpoints.
type BugHandler struct {
	svc    bugService
	visits visitTracker
	log    *slog.Logger
}

// NewBugHandler creates a BugHandler. visitLimit distinct bugs may be read
// per visitWindow by one client.
func NewBugHandler(svc bugService, visitLimit int, visitWindow time.Duration, logger *slog.Logger) *BugHandler {
	return &BugHandler{
		svc:    svc,
		visits: visitTracker{limit: visitLimit, window: visitWindow},
		log:    logger.With("handler", "bug"),
	}
}

type bugRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    any      `json:"severity"`
	CreatedAt   any      `json:"createdAt"`
	Labels      []string `json:"labels"`
}

func (b bugRequest) input() bugsvc.BugInput {
	return bugsvc.BugInput{
		Title:       b.Title,
		Description: b.Description,
		Severity:    b.Severity,
		CreatedAt:   b.CreatedAt,
		Labels:      b.Labels,
	}
}

// List handles GET /bugs.
func (h *BugHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.QueryPage(r.Context(), parseFilter(r.URL.Query()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(res.Total))
	w.Header().Set("X-Page-Size", strconv.Itoa(res.PageSize))
	writeJSON(w, http.StatusOK, res.Bugs)
}

// Get handles GET /bugs/{id}.
func (h *BugHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if !h.visits.admit(w, r, id) {
		h.log.InfoContext(r.Context(), "bug visit limit reached", slog.String("bug_id", id))
		writeError(w, http.StatusUnauthorized, "Wait for a bit")
		return
	}

	b, err := h.svc.GetBug(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Create handles POST /bugs.
func (h *BugHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bugRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.CreateBug(r.Context(), req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// Update handles PUT /bugs/{id}.
func (h *BugHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bugRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.UpdateBug(r.Context(), r.PathValue("id"), req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Delete handles DELETE /bugs/{id}.
func (h *BugHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.DeleteBug(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"_id": id})
}

// Export handles GET /bugs/export. The document is built in memory so a
// render failure can still be reported as a JSON error.
func (h *BugHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.svc.ExportPDF(r.Context(), &buf); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeAttachment(w, "application/pdf", "bugs.pdf", &buf)
}

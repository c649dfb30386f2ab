package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"time"
)

const visitCookie = "visitedBugs"

// visitTracker throttles single-bug reads per client through a cookie that
// lists the distinct bug ids viewed within the window. A zero limit turns the
// throttle off.
type visitTracker struct {
	limit  int
	window time.Duration
}

// admit records id as visited and reports whether the read may proceed. On
// success the cookie is refreshed, restarting the window. On rejection it is
// left alone so it expires on schedule.
func (v visitTracker) admit(w http.ResponseWriter, r *http.Request, id string) bool {
	if v.limit <= 0 {
		return true
	}

	visited := readVisited(r)
	if !slices.Contains(visited, id) {
		visited = append(visited, id)
	}
	if len(visited) > v.limit {
		return false
	}

	raw, err := json.Marshal(visited)
	if err != nil {
		return true
	}
	http.SetCookie(w, &http.Cookie{
		Name:     visitCookie,
		Value:    url.QueryEscape(string(raw)),
		Path:     "/",
		MaxAge:   int(v.window / time.Second),
		Expires:  time.Now().Add(v.window),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}

// readVisited decodes the cookie. A missing or malformed cookie counts as
// no visits.
func readVisited(r *http.Request) []string {
	c, err := r.Cookie(visitCookie)
	if err != nil {
		return nil
	}
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

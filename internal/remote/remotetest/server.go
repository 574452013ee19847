// Package remotetest serves the grocery store contract from memory so the
// client, the view and the CLI can be tested against real HTTP.
package remotetest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/idilsaglam/grocery/internal/model"
)

// Call records one request the server saw.
type Call struct {
	Method string
	Path   string
	Body   string
}

type Server struct {
	*httptest.Server

	mu     sync.Mutex
	items  []model.Item
	note   string
	calls  []Call
	fail   map[string]int // route -> status to answer with
	broken map[string]bool
}

// New starts a server holding items and note. It is closed when t ends.
func New(t testing.TB, items []model.Item, note string) *Server {
	t.Helper()
	s := &Server{
		items:  append([]model.Item(nil), items...),
		note:   note,
		fail:   map[string]int{},
		broken: map[string]bool{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", s.listItems)
	mux.HandleFunc("PATCH /items/{id}/toggle", s.toggleItem)
	mux.HandleFunc("GET /note", s.getNote)
	mux.HandleFunc("PUT /note", s.putNote)

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// Route names accepted by Fail and Malformed.
const (
	RouteListItems  = "GET /items"
	RouteToggleItem = "PATCH /items/{id}/toggle"
	RouteGetNote    = "GET /note"
	RoutePutNote    = "PUT /note"
)

// Fail makes route answer with status until Recover is called.
func (s *Server) Fail(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[route] = status
}

// Malformed makes route answer 200 with a body that is not JSON.
func (s *Server) Malformed(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broken[route] = true
}

// Recover clears every injected failure.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = map[string]int{}
	s.broken = map[string]bool{}
}

// SetItems replaces the server-side list, as another device would.
func (s *Server) SetItems(items []model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Item(nil), items...)
}

func (s *Server) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Item(nil), s.items...)
}

func (s *Server) Note() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.note
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsTo counts recorded calls matching method and path.
func (s *Server) CallsTo(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.EscapedPath(), Body: string(body)})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// injected answers for a route with a failure, reporting whether it did.
func (s *Server) injected(w http.ResponseWriter, route string) bool {
	s.mu.Lock()
	status, failing := s.fail[route]
	broken := s.broken[route]
	s.mu.Unlock()
	switch {
	case failing:
		http.Error(w, http.StatusText(status), status)
		return true
	case broken:
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
		return true
	}
	return false
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	if s.injected(w, RouteListItems) {
		return
	}
	writeJSON(w, s.Items())
}

func (s *Server) toggleItem(w http.ResponseWriter, r *http.Request) {
	if s.injected(w, RouteToggleItem) {
		return
	}
	id := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.String() == id {
			s.items[i].InStock = !s.items[i].InStock
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(s.items[i])
			return
		}
	}
	http.Error(w, "item not found", http.StatusNotFound)
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	if s.injected(w, RouteGetNote) {
		return
	}
	writeJSON(w, model.Note{Text: s.Note()})
}

func (s *Server) putNote(w http.ResponseWriter, r *http.Request) {
	if s.injected(w, RoutePutNote) {
		return
	}
	var n model.Note
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.note = n.Text
	s.mu.Unlock()
	writeJSON(w, n)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Package server exposes sequence storage, playback math and
// thumbnails over HTTP. Every stored sequence owns a private engine;
// a per-entry mutex serializes access to it because engines are
// single-threaded by contract.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/lixenwraith/kinloom/engine"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/status"
)

// Server holds the sequence store and the metrics registry shared by
// all engines it creates
type Server struct {
	cfg      Config
	registry *status.Registry
	handler  http.Handler

	statRequests  *atomic.Int64
	statSequences *atomic.Int64

	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	mu  sync.Mutex
	id  string
	seq *sequence.Sequence
	eng *engine.Engine
}

// New creates a server with an empty sequence store
func New(cfg Config) *Server {
	s := &Server{
		cfg:      cfg,
		registry: status.NewRegistry(),
		entries:  make(map[string]*entry),
	}
	s.statRequests = s.registry.Ints.Get("server.requests")
	s.statSequences = s.registry.Ints.Get("server.sequences")

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.countRequests)
	router.HandleFunc("/sequences", s.handleCreate).Methods("POST")
	router.HandleFunc("/sequences", s.handleList).Methods("GET")
	router.HandleFunc("/sequences/{id}", s.handleGet).Methods("GET")
	router.HandleFunc("/sequences/{id}", s.handleDelete).Methods("DELETE")
	router.HandleFunc("/sequences/{id}/state", s.handleState).Methods("GET")
	router.HandleFunc("/sequences/{id}/thumbnail.png", s.handleThumbnailPNG).Methods("GET")
	router.HandleFunc("/sequences/{id}/thumbnail.gif", s.handleThumbnailGIF).Methods("GET")
	router.HandleFunc("/status", s.handleStatus).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})
	s.handler = c.Handler(router)
	return s
}

// Handler returns the root HTTP handler including the CORS layer
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Registry exposes the metrics registry for the status endpoint and
// for hosts that embed the server
func (s *Server) Registry() *status.Registry {
	return s.registry
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.statRequests.Add(1)
		next.ServeHTTP(w, r)
	})
}

// lookup resolves the {id} route variable to a stored entry, writing a
// 404 when it is unknown
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) *entry {
	id := mux.Vars(r)["id"]
	s.mu.RLock()
	e := s.entries[id]
	s.mu.RUnlock()
	if e == nil {
		http.Error(w, "unknown sequence", http.StatusNotFound)
	}
	return e
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lixenwraith/kinloom/engine"
	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/thumbnail"
	"github.com/lixenwraith/kinloom/util"
)

type sequenceSummary struct {
	ID         string `json:"id"`
	Word       string `json:"word"`
	Author     string `json:"author,omitempty"`
	GridMode   string `json:"grid_mode"`
	TotalBeats int    `json:"total_beats"`
}

type propStateBody struct {
	CenterPathAngle    float64 `json:"center_path_angle"`
	StaffRotationAngle float64 `json:"staff_rotation_angle"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
}

type stateResponse struct {
	Beat float64       `json:"beat"`
	Blue propStateBody `json:"blue"`
	Red  propStateBody `json:"red"`
}

func summarize(e *entry) sequenceSummary {
	return sequenceSummary{
		ID:         e.id,
		Word:       e.seq.Word,
		Author:     e.seq.Author,
		GridMode:   e.seq.Grid.String(),
		TotalBeats: e.seq.TotalBeats(),
	}
}

// handleCreate parses a posted sequence document and stores it under a
// fresh id
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxDocumentBytes))
	if err != nil {
		http.Error(w, "could not read request body", http.StatusBadRequest)
		return
	}

	seq, err := sequence.Parse(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	eng := engine.New(nil, nil, s.registry)
	eng.Load(seq)

	e := &entry{
		id:  uuid.New().String(),
		seq: seq,
		eng: eng,
	}
	s.mu.Lock()
	s.entries[e.id] = e
	s.statSequences.Store(int64(len(s.entries)))
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, summarize(e))
}

// handleList returns summaries of every stored sequence in id order
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	ids := util.SortedKeys(s.entries)
	res := make([]sequenceSummary, 0, len(ids))
	for _, id := range ids {
		res = append(res, summarize(s.entries[id]))
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	e := s.lookup(w, r)
	if e == nil {
		return
	}
	writeJSON(w, http.StatusOK, summarize(e))
}

// handleDelete removes a stored sequence
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	_, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
		s.statSequences.Store(int64(len(s.entries)))
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "unknown sequence", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleState scrubs the entry's engine to the requested beat and
// returns both prop poses. Without a beat parameter it reports the
// current position unchanged
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	e := s.lookup(w, r)
	if e == nil {
		return
	}

	var scrub bool
	var beat float64
	if raw := r.URL.Query().Get("beat"); raw != "" {
		var err error
		beat, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "beat query parameter must be a number", http.StatusBadRequest)
			return
		}
		scrub = true
	}

	e.mu.Lock()
	if scrub {
		e.eng.Scrub(beat)
	}
	actual := e.eng.CurrentBeat()
	blue := e.eng.PropState(notation.HandBlue)
	red := e.eng.PropState(notation.HandRed)
	e.mu.Unlock()

	writeJSON(w, http.StatusOK, stateResponse{
		Beat: actual,
		Blue: propStateBody{blue.CenterPathAngle, blue.StaffRotationAngle, blue.X, blue.Y},
		Red:  propStateBody{red.CenterPathAngle, red.StaffRotationAngle, red.X, red.Y},
	})
}

// thumbnailOptions reads the optional width and height query
// parameters, clamped to sane raster bounds
func thumbnailOptions(r *http.Request) thumbnail.Options {
	var opts thumbnail.Options
	if v, err := strconv.Atoi(r.URL.Query().Get("width")); err == nil {
		opts.Width = util.Clamp(v, 16, 2048)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("height")); err == nil {
		opts.Height = util.Clamp(v, 16, 2048)
	}
	return opts
}

func (s *Server) handleThumbnailPNG(w http.ResponseWriter, r *http.Request) {
	e := s.lookup(w, r)
	if e == nil {
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := thumbnail.WritePNG(w, e.seq, thumbnailOptions(r)); err != nil {
		http.Error(w, "thumbnail rendering failed", http.StatusInternalServerError)
	}
}

func (s *Server) handleThumbnailGIF(w http.ResponseWriter, r *http.Request) {
	e := s.lookup(w, r)
	if e == nil {
		return
	}

	w.Header().Set("Content-Type", "image/gif")
	if err := thumbnail.WriteGIF(w, e.seq, thumbnailOptions(r)); err != nil {
		http.Error(w, "thumbnail rendering failed", http.StatusInternalServerError)
	}
}

// handleStatus returns a snapshot of every metric the server and its
// engines have recorded
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Snapshot())
}

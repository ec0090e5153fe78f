package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
	"github.com/flowsketch/flowsketch/pkg/errors"
	"github.com/flowsketch/flowsketch/pkg/layout"
	"github.com/flowsketch/flowsketch/pkg/pipeline"
	"github.com/flowsketch/flowsketch/pkg/store"
)

// maxBodyBytes caps request bodies. Process definitions are small; a
// multi-megabyte body is almost certainly a mistake.
const maxBodyBytes = 4 << 20

// layoutRequest is the body of POST /api/layout.
type layoutRequest struct {
	Process json.RawMessage `json:"process"`
	Formats []string        `json:"formats,omitempty"`
	Refresh bool            `json:"refresh,omitempty"`
}

// layoutResponse is the reply of POST /api/layout. Artifacts other than
// the layout itself are returned base64-encoded by encoding/json.
type layoutResponse struct {
	ProcessHash string            `json:"process_hash"`
	Layout      *layout.Layout    `json:"layout"`
	Artifacts   map[string][]byte `json:"artifacts,omitempty"`
	CacheHit    bool              `json:"cache_hit"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if len(req.Process) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "process is required"))
		return
	}

	opts := pipeline.Options{
		Source:  req.Process,
		Formats: req.Formats,
		Refresh: req.Refresh,
		Logger:  s.Logger,
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatJSON}
	}

	result, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidProcess, err, "layout failed: %v", err))
		return
	}

	s.writeJSON(w, http.StatusOK, layoutResponse{
		ProcessHash: result.ProcessHash,
		Layout:      result.Layout,
		Artifacts:   result.Artifacts,
		CacheHit:    result.CacheInfo.LayoutHit,
	})
}

// createDiagramRequest is the body of POST /api/diagrams.
type createDiagramRequest struct {
	Name    string          `json:"name,omitempty"`
	Process json.RawMessage `json:"process"`
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "diagram storage is not configured"))
		return
	}

	var req createDiagramRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if len(req.Process) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "process is required"))
		return
	}

	p, err := bpmn.UnmarshalProcess(req.Process)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidProcess, err, "invalid process: %v", err))
		return
	}

	l, err := s.Runner.ComputeLayout(r.Context(), p, pipeline.Options{Logger: s.Logger})
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "layout failed: %v", err))
		return
	}

	d := store.NewDiagram(req.Name, p, l)
	if err := s.Store.Put(r.Context(), d); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStorage, err, "store diagram: %v", err))
		return
	}

	s.writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeError(w, errors.New(errors.ErrCodeDiagramNotFound, "diagram storage is not configured"))
		return
	}

	d, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeError(w, errors.New(errors.ErrCodeDiagramNotFound, "diagram storage is not configured"))
		return
	}

	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		s.writeJSON(w, http.StatusOK, map[string][]string{"diagrams": {}})
		return
	}

	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeStorage, err, "list diagrams: %v", err))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"diagrams": ids})
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body: %v", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON body: %v", err)
	}
	return nil
}

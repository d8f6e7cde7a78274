package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"aqcalc/internal/export"
	"aqcalc/internal/logging"
	"aqcalc/internal/pipeline"
	"aqcalc/internal/segment"
)

const requestIDHeader = "X-Request-ID"

// ScoreRequest is the body accepted by the score and export endpoints.
type ScoreRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode,omitempty"`
}

// ErrorResponse is returned for failed requests. Result is set when the
// units were computed but the export could not be built.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Result *pipeline.ResultSet `json:"result,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	rs, ok := s.score(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, rs)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	rs, ok := s.score(w, r)
	if !ok {
		return
	}

	art, err := export.Build(rs, format, s.opts.Export)
	s.metrics.ObserveExport(string(format), err)
	if err != nil {
		s.logger.Error("export failed",
			logging.String(logging.FieldRunID, rs.RunID),
			logging.String("format", string(format)),
			logging.Error(err),
		)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Result: rs})
		return
	}

	w.Header().Set("Content-Type", art.MIME)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": art.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(art.Data); err != nil {
		s.logger.Warn("write artifact failed", logging.Error(err))
	}
}

// score decodes the request and runs the pipeline. It writes the error
// response itself and reports false when the handler should stop.
func (s *Server) score(w http.ResponseWriter, r *http.Request) (*pipeline.ResultSet, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}

	requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, requestID)

	req, status, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, status, err.Error())
		return nil, false
	}

	mode := s.opts.DefaultMode
	if strings.TrimSpace(req.Mode) != "" {
		mode, err = segment.ParseMode(req.Mode)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
	}

	ctx := logging.WithRunID(r.Context(), requestID)
	rs, err := s.pipeline.Run(ctx, req.Text, mode)
	if err != nil {
		s.logger.Error("pipeline run failed", logging.String(logging.FieldRunID, requestID), logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	s.metrics.ObserveRun(mode.String(), len(rs.Units), len(rs.Failures))
	return rs, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (ScoreRequest, int, error) {
	var req ScoreRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return req, http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		case errors.Is(err, io.EOF):
			return req, http.StatusBadRequest, errors.New("request body is empty")
		default:
			return req, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err)
		}
	}
	return req, http.StatusOK, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}

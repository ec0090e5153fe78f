package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/flowsketch/flowsketch/pkg/errors"
	"github.com/flowsketch/flowsketch/pkg/store"
)

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var resp errorResponse
	resp.Error.Code = errors.GetCode(err)
	resp.Error.Message = errors.UserMessage(err)
	if resp.Error.Code == "" {
		if stderrors.Is(err, store.ErrNotFound) {
			resp.Error.Code = errors.ErrCodeDiagramNotFound
		} else {
			resp.Error.Code = errors.ErrCodeInternal
		}
	}
	s.writeJSON(w, statusFor(err), resp)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	if stderrors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidProcess,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeDiagramNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

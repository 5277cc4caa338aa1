package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"dealer-finance/domain"
	"dealer-finance/logger"
)

const (
	ErrMsgInvalidRequest        = "invalid request body"
	ErrMsgInvalidRequestSummary = "invalid request"
	ErrMsgUnsupportedMediaType  = "Content-Type must be application/json"
	ErrMsgInternal              = "internal server error"
	ErrMsgRateLimited           = "rate limit exceeded"
	ErrMsgUnauthorized          = "unauthorized"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		slog.Error("Error encoding response", "error", err)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps domain errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTerm),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidBudget):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoAffordableTerm):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.FromContext(r.Context()).Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgInternal)
	}
}

// decodeAndValidate writes the error response itself; callers just return
// when it reports false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		respondError(w, http.StatusUnsupportedMediaType, ErrMsgUnsupportedMediaType)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Debug("Error decoding request body", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := getValidator().Struct(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: formatValidationError(err),
		})
		return false
	}
	return true
}

// hasBody reports whether the request carries at least one byte. It does not
// trust ContentLength, which is -1 for chunked requests.
func hasBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	br := bufio.NewReader(r.Body)
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		return false
	}
	r.Body = struct {
		io.Reader
		io.Closer
	}{br, r.Body}
	return true
}

package httpadapter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
	"control-ads/internal/db"
)

const dateLayout = "2006-01-02"

// envelope is the body of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) respond(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// fail maps err onto a status code. Collaborator failures are logged and
// carry the underlying error text.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrUnavailable):
		status = http.StatusServiceUnavailable
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	writeJSON(w, status, envelope{Error: err.Error(), Message: http.StatusText(status)})
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", port.ErrInvalidInput)
		}
		return fmt.Errorf("%w: malformed JSON: %v", port.ErrInvalidInput, err)
	}
	return validateStruct(dst)
}

func parseUUID(name, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid UUID", port.ErrInvalidInput, name)
	}
	return id, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return parseUUID(name, chi.URLParam(r, name))
}

// queryUUID parses an optional query parameter. Absent parameters yield
// uuid.Nil.
func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, nil
	}
	return parseUUID(name, raw)
}

func parseCategory(raw string) (domain.Category, error) {
	c, err := domain.ParseCategory(raw)
	if err != nil {
		return c, fmt.Errorf("%w: %v", port.ErrInvalidInput, err)
	}
	return c, nil
}

func queryCategory(r *http.Request) (*domain.Category, error) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		return nil, nil
	}
	c, err := parseCategory(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func queryDate(r *http.Request, name string) (*time.Time, error) {
	return parseDate(name, ptr(r.URL.Query().Get(name)))
}

// parseDate parses an optional YYYY-MM-DD value.
func parseDate(name string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", port.ErrInvalidInput, name)
	}
	return &t, nil
}

func ptr[T any](v T) *T { return &v }

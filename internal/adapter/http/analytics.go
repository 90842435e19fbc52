package httpadapter

import (
	"fmt"
	"net/http"

	"control-ads/internal/core/analytics"
	"control-ads/internal/core/port"
)

type suggestionsRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Scope     string `json:"scope" validate:"omitempty,oneof=content campaign general"`
}

// handleSuggestions runs the suggestion rules for a project. Scope
// defaults to general.
func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	projectID, err := parseUUID("project_id", req.ProjectID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	scope, err := analytics.ParseScope(req.Scope)
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: %v", port.ErrInvalidInput, err))
		return
	}
	resp, err := h.svc.Analytics.Suggestions(r.Context(), port.SuggestionsReq{ProjectID: projectID, Scope: scope})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.metrics.ObserveSuggestions(resp.Suggestions)
	h.respond(w, http.StatusOK, resp)
}

func (h *Handler) handleProjectMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	report, err := h.svc.Analytics.ProjectMetrics(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, report)
}

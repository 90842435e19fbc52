package httpadapter

import (
	"net/http"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
)

type createProjectRequest struct {
	Name                   string   `json:"name" validate:"required,max=200"`
	Description            *string  `json:"description" validate:"omitempty,max=2000"`
	MonthlySpendProjection *float64 `json:"monthly_spend_projection" validate:"omitempty,gte=0"`
}

type updateProjectRequest struct {
	Name                   *string  `json:"name" validate:"omitempty,max=200"`
	Description            *string  `json:"description" validate:"omitempty,max=2000"`
	MonthlySpendProjection *float64 `json:"monthly_spend_projection" validate:"omitempty,gte=0"`
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.Projects.CreateProject(r.Context(), port.CreateProjectReq{
		Name:                   req.Name,
		Description:            req.Description,
		MonthlySpendProjection: req.MonthlySpendProjection,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, p)
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.Projects.ListProjects(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, nonNil(projects))
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.Projects.GetProject(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateProjectRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.Projects.UpdateProject(r.Context(), id, domain.ProjectUpdate{
		Name:                   req.Name,
		Description:            req.Description,
		MonthlySpendProjection: req.MonthlySpendProjection,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, p)
}

func (h *Handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.Projects.DeleteProject(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "project deleted"})
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

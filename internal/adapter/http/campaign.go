package httpadapter

import (
	"net/http"

	"control-ads/internal/core/domain"
)

type videoRequest struct {
	P25  *int64 `json:"p25" validate:"omitempty,gte=0"`
	P50  *int64 `json:"p50" validate:"omitempty,gte=0"`
	P75  *int64 `json:"p75" validate:"omitempty,gte=0"`
	P95  *int64 `json:"p95" validate:"omitempty,gte=0"`
	P100 *int64 `json:"p100" validate:"omitempty,gte=0"`
}

func (v videoRequest) toDomain() domain.VideoCompletion {
	return domain.VideoCompletion{P25: v.P25, P50: v.P50, P75: v.P75, P95: v.P95, P100: v.P100}
}

// campaignMetrics are the measured fields shared by create and update.
type campaignMetrics struct {
	Objective         *string      `json:"objective" validate:"omitempty,max=200"`
	TotalEngagement   *int64       `json:"total_engagement" validate:"omitempty,gte=0"`
	CostPerEngagement *float64     `json:"cost_per_engagement" validate:"omitempty,gte=0"`
	TotalReach        *int64       `json:"total_reach" validate:"omitempty,gte=0"`
	ThruPlayTotal     *int64       `json:"thruplay_total" validate:"omitempty,gte=0"`
	AverageFrequency  *float64     `json:"average_frequency" validate:"omitempty,gte=0"`
	TotalSpend        *float64     `json:"total_spend" validate:"omitempty,gte=0"`
	Video             videoRequest `json:"video"`
	StartDate         *string      `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate           *string      `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type createCampaignRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=200"`
	Category  string `json:"category" validate:"required,oneof=C2 C3 C4"`
	campaignMetrics
}

type updateCampaignRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Category *string `json:"category" validate:"omitempty,oneof=C2 C3 C4"`
	campaignMetrics
}

type attachContentRequest struct {
	ContentID string `json:"content_id" validate:"required"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	projectID, err := parseUUID("project_id", req.ProjectID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	category, err := parseCategory(req.Category)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), domain.Campaign{
		ProjectID:         projectID,
		Name:              req.Name,
		Category:          category,
		Objective:         req.Objective,
		TotalEngagement:   req.TotalEngagement,
		CostPerEngagement: req.CostPerEngagement,
		TotalReach:        req.TotalReach,
		ThruPlayTotal:     req.ThruPlayTotal,
		AverageFrequency:  req.AverageFrequency,
		TotalSpend:        req.TotalSpend,
		Video:             req.Video.toDomain(),
		StartDate:         start,
		EndDate:           end,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryUUID(r, "project_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	category, err := queryCategory(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	campaigns, err := h.svc.Campaigns.ListCampaigns(r.Context(), projectID, category)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, nonNil(campaigns))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateCampaignRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	upd := domain.CampaignUpdate{
		Name:              req.Name,
		Objective:         req.Objective,
		TotalEngagement:   req.TotalEngagement,
		CostPerEngagement: req.CostPerEngagement,
		TotalReach:        req.TotalReach,
		ThruPlayTotal:     req.ThruPlayTotal,
		AverageFrequency:  req.AverageFrequency,
		TotalSpend:        req.TotalSpend,
		Video:             req.Video.toDomain(),
	}
	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		upd.Category = &category
	}
	if upd.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		h.fail(w, r, err)
		return
	}
	if upd.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.UpdateCampaign(r.Context(), id, upd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.Campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "campaign deleted"})
}

func (h *Handler) handleListCampaignContents(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	contents, err := h.svc.Campaigns.ListCampaignContents(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, nonNil(contents))
}

func (h *Handler) handleAttachContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req attachContentRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	contentID, err := parseUUID("content_id", req.ContentID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.Campaigns.AttachContent(r.Context(), id, contentID); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Message: "content attached"})
}

func (h *Handler) handleDetachContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	contentID, err := pathUUID(r, "contentID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.Campaigns.DetachContent(r.Context(), id, contentID); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "content detached"})
}

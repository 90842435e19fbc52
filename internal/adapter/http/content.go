package httpadapter

import (
	"net/http"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
)

// contentMetrics are the measured fields shared by create and update.
// Cost per follower and cost per engagement are derived by the store.
type contentMetrics struct {
	Reach           *int64       `json:"reach" validate:"omitempty,gte=0"`
	Engagement      *int64       `json:"engagement" validate:"omitempty,gte=0"`
	Spend           *float64     `json:"spend" validate:"omitempty,gte=0"`
	CPM             *float64     `json:"cpm" validate:"omitempty,gte=0"`
	FollowersBefore *int64       `json:"followers_before" validate:"omitempty,gte=0"`
	FollowersAfter  *int64       `json:"followers_after" validate:"omitempty,gte=0"`
	ThruPlay        *int64       `json:"thruplay" validate:"omitempty,gte=0"`
	Frequency       *float64     `json:"frequency" validate:"omitempty,gte=0"`
	Video           videoRequest `json:"video"`
	BoostStart      *string      `json:"boost_start" validate:"omitempty,datetime=2006-01-02"`
	BoostEnd        *string      `json:"boost_end" validate:"omitempty,datetime=2006-01-02"`
}

type createContentRequest struct {
	ProjectID  string `json:"project_id" validate:"required"`
	Identifier string `json:"identifier" validate:"required,max=255"`
	Category   string `json:"category" validate:"required,oneof=C1 C2 C3 C4"`
	contentMetrics
}

type updateContentRequest struct {
	Identifier *string `json:"identifier" validate:"omitempty,max=255"`
	Category   *string `json:"category" validate:"omitempty,oneof=C1 C2 C3 C4"`
	contentMetrics
}

func (h *Handler) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var req createContentRequest
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
	start, err := parseDate("boost_start", req.BoostStart)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	end, err := parseDate("boost_end", req.BoostEnd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Contents.CreateContent(r.Context(), domain.Content{
		ProjectID:       projectID,
		Identifier:      req.Identifier,
		Category:        category,
		Reach:           req.Reach,
		Engagement:      req.Engagement,
		Spend:           req.Spend,
		CPM:             req.CPM,
		FollowersBefore: req.FollowersBefore,
		FollowersAfter:  req.FollowersAfter,
		ThruPlay:        req.ThruPlay,
		Frequency:       req.Frequency,
		Video:           req.Video.toDomain(),
		BoostStart:      start,
		BoostEnd:        end,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, c)
}

func (h *Handler) handleListContents(w http.ResponseWriter, r *http.Request) {
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
	contents, err := h.svc.Contents.ListContents(r.Context(), projectID, category)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, nonNil(contents))
}

func (h *Handler) handleGetContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Contents.GetContent(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateContentRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	upd := domain.ContentUpdate{
		Identifier:      req.Identifier,
		Reach:           req.Reach,
		Engagement:      req.Engagement,
		Spend:           req.Spend,
		CPM:             req.CPM,
		FollowersBefore: req.FollowersBefore,
		FollowersAfter:  req.FollowersAfter,
		ThruPlay:        req.ThruPlay,
		Frequency:       req.Frequency,
		Video:           req.Video.toDomain(),
	}
	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		upd.Category = &category
	}
	if upd.BoostStart, err = parseDate("boost_start", req.BoostStart); err != nil {
		h.fail(w, r, err)
		return
	}
	if upd.BoostEnd, err = parseDate("boost_end", req.BoostEnd); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Contents.UpdateContent(r.Context(), id, upd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.Contents.DeleteContent(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "content deleted"})
}

// handleBestCreatives returns the cheapest boosted contents per category.
// Optional from and to (YYYY-MM-DD) bound the boost window.
func (h *Handler) handleBestCreatives(w http.ResponseWriter, r *http.Request) {
	var (
		req port.BestCreativesReq
		err error
	)
	if req.From, err = queryDate(r, "from"); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.To, err = queryDate(r, "to"); err != nil {
		h.fail(w, r, err)
		return
	}
	ranked, err := h.svc.Contents.BestCreatives(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make(map[string][]domain.Content, len(ranked))
	for category, contents := range ranked {
		out[category.String()] = nonNil(contents)
	}
	h.respond(w, http.StatusOK, out)
}

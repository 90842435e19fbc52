package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
)

// CampaignUseCase manages campaigns and the contents attached to them.
type CampaignUseCase struct {
	projects  port.ProjectRepository
	campaigns port.CampaignRepository
	contents  port.ContentRepository
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a new usecase with the provided repositories.
func NewCampaignUseCase(projects port.ProjectRepository, campaigns port.CampaignRepository, contents port.ContentRepository) *CampaignUseCase {
	return &CampaignUseCase{projects: projects, campaigns: campaigns, contents: contents}
}

// CreateCampaign stores a campaign of an existing project. Only the
// engagement categories C2..C4 are accepted.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: name is required", port.ErrInvalidInput)
	}
	if !c.Category.IsCampaignCategory() {
		return nil, fmt.Errorf("%w: campaign category must be one of C2, C3, C4", port.ErrInvalidInput)
	}
	if _, err := requireProject(ctx, u.projects, c.ProjectID); err != nil {
		return nil, err
	}
	return u.campaigns.CreateCampaign(ctx, c)
}

// GetCampaign returns a campaign or port.ErrNotFound.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	return c, nil
}

// ListCampaigns returns the campaigns of a project, optionally filtered by
// category.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Campaign, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project_id is required", port.ErrInvalidInput)
	}
	return u.campaigns.ListCampaigns(ctx, projectID, category)
}

func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id uuid.UUID, upd domain.CampaignUpdate) (*domain.Campaign, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be blank", port.ErrInvalidInput)
		}
		upd.Name = &name
	}
	if upd.Category != nil && !upd.Category.IsCampaignCategory() {
		return nil, fmt.Errorf("%w: campaign category must be one of C2, C3, C4", port.ErrInvalidInput)
	}
	c, err := u.campaigns.UpdateCampaign(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	return c, nil
}

func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	ok, err := u.campaigns.DeleteCampaign(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: campaign %s", port.ErrNotFound, id)
	}
	return nil
}

// AttachContent links an existing content to an existing campaign.
// Attaching twice is a no-op.
func (u *CampaignUseCase) AttachContent(ctx context.Context, campaignID, contentID uuid.UUID) error {
	if _, err := u.GetCampaign(ctx, campaignID); err != nil {
		return err
	}
	cnt, err := u.contents.GetContent(ctx, contentID)
	if err != nil {
		return err
	}
	if cnt == nil {
		return fmt.Errorf("%w: content %s", port.ErrNotFound, contentID)
	}
	return u.campaigns.AttachContent(ctx, campaignID, contentID)
}

func (u *CampaignUseCase) DetachContent(ctx context.Context, campaignID, contentID uuid.UUID) error {
	ok, err := u.campaigns.DetachContent(ctx, campaignID, contentID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: content %s is not attached to campaign %s", port.ErrNotFound, contentID, campaignID)
	}
	return nil
}

func (u *CampaignUseCase) ListCampaignContents(ctx context.Context, campaignID uuid.UUID) ([]domain.Content, error) {
	if _, err := u.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.campaigns.ListCampaignContents(ctx, campaignID)
}

package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"control-ads/internal/core/domain"
)

var (
	// ErrInvalidInput marks a request rejected before reaching the store.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a reference to a missing or soft-deleted entity.
	ErrNotFound = errors.New("not found")
)

// ProjectRepository persists projects. Lookups return nil, nil when the
// project does not exist or was soft-deleted.
type ProjectRepository interface {
	// CreateProject inserts a project and returns the stored snapshot.
	CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error)
	// GetProject returns an active project by id.
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	// ListProjects returns active projects, newest first.
	ListProjects(ctx context.Context) ([]domain.Project, error)
	// UpdateProject applies upd and returns the new snapshot.
	UpdateProject(ctx context.Context, id uuid.UUID, upd domain.ProjectUpdate) (*domain.Project, error)
	// DeleteProject marks a project inactive. It reports false when nothing
	// was deleted.
	DeleteProject(ctx context.Context, id uuid.UUID) (bool, error)
}

// CampaignRepository persists campaigns and their content associations.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns returns active campaigns of a project, newest first,
	// optionally restricted to one category.
	ListCampaigns(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, upd domain.CampaignUpdate) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) (bool, error)

	// AttachContent associates a content with a campaign. Attaching twice
	// is a no-op.
	AttachContent(ctx context.Context, campaignID, contentID uuid.UUID) error
	// DetachContent removes an association, reporting whether it existed.
	DetachContent(ctx context.Context, campaignID, contentID uuid.UUID) (bool, error)
	// ListCampaignContents returns the active contents attached to a campaign.
	ListCampaignContents(ctx context.Context, campaignID uuid.UUID) ([]domain.Content, error)
}

// ContentRepository persists contents.
type ContentRepository interface {
	CreateContent(ctx context.Context, c domain.Content) (*domain.Content, error)
	GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	// ListContents returns active contents of a project, newest first,
	// optionally restricted to one category.
	ListContents(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Content, error)
	UpdateContent(ctx context.Context, id uuid.UUID, upd domain.ContentUpdate) (*domain.Content, error)
	DeleteContent(ctx context.Context, id uuid.UUID) (bool, error)
	// ListBoostedContents returns active contents across projects whose boost
	// started on or after from and ended on or before to. Nil bounds are
	// open.
	ListBoostedContents(ctx context.Context, from, to *time.Time) ([]domain.Content, error)
}

package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"control-ads/internal/core/analytics"
	"control-ads/internal/core/domain"
)

// ProjectUseCase exposes project management.
type ProjectUseCase interface {
	CreateProject(ctx context.Context, req CreateProjectReq) (*domain.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, upd domain.ProjectUpdate) (*domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// CampaignUseCase exposes campaign management.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, upd domain.CampaignUpdate) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	AttachContent(ctx context.Context, campaignID, contentID uuid.UUID) error
	DetachContent(ctx context.Context, campaignID, contentID uuid.UUID) error
	ListCampaignContents(ctx context.Context, campaignID uuid.UUID) ([]domain.Content, error)
}

// ContentUseCase exposes content management and the creative leaderboard.
type ContentUseCase interface {
	CreateContent(ctx context.Context, c domain.Content) (*domain.Content, error)
	GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	ListContents(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Content, error)
	UpdateContent(ctx context.Context, id uuid.UUID, upd domain.ContentUpdate) (*domain.Content, error)
	DeleteContent(ctx context.Context, id uuid.UUID) error
	// BestCreatives ranks boosted contents per category, cheapest first.
	BestCreatives(ctx context.Context, req BestCreativesReq) (map[domain.Category][]domain.Content, error)
}

// AnalyticsUseCase exposes the derived reports.
type AnalyticsUseCase interface {
	// Suggestions evaluates the rule battery for a project.
	Suggestions(ctx context.Context, req SuggestionsReq) (*SuggestionsResp, error)
	// ProjectMetrics builds the consolidated report of a project.
	ProjectMetrics(ctx context.Context, projectID uuid.UUID) (*analytics.ProjectReport, error)
}

type CreateProjectReq struct {
	Name                   string
	Description            *string
	MonthlySpendProjection *float64
}

type BestCreativesReq struct {
	From *time.Time
	To   *time.Time
}

type SuggestionsReq struct {
	ProjectID uuid.UUID
	Scope     analytics.Scope
}

// SuggestionsResp is the result of a suggestion run.
type SuggestionsResp struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
	Total       int                 `json:"total"`
	AnalyzedAt  time.Time           `json:"analyzed_at"`
}

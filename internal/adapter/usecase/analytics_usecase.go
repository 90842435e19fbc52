package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"control-ads/internal/core/analytics"
	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
)

// AnalyticsUseCase loads project collections and runs the analytics core
// over them.
type AnalyticsUseCase struct {
	projects  port.ProjectRepository
	campaigns port.CampaignRepository
	contents  port.ContentRepository
	engine    *analytics.Engine

	now func() time.Time
}

var _ port.AnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase creates a new usecase. A nil engine uses the default
// thresholds.
func NewAnalyticsUseCase(projects port.ProjectRepository, campaigns port.CampaignRepository, contents port.ContentRepository, engine *analytics.Engine) *AnalyticsUseCase {
	if engine == nil {
		engine = analytics.NewEngine(analytics.DefaultThresholds())
	}
	return &AnalyticsUseCase{
		projects:  projects,
		campaigns: campaigns,
		contents:  contents,
		engine:    engine,
		now:       time.Now,
	}
}

// Suggestions evaluates the rules of the requested scope against the
// project's active contents and campaigns.
func (u *AnalyticsUseCase) Suggestions(ctx context.Context, req port.SuggestionsReq) (*port.SuggestionsResp, error) {
	if req.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project_id is required", port.ErrInvalidInput)
	}
	scope := req.Scope
	if scope == "" {
		scope = analytics.ScopeGeneral
	}
	contents, campaigns, err := u.load(ctx, req.ProjectID, scope.IncludesContent(), scope.IncludesCampaigns())
	if err != nil {
		return nil, err
	}
	suggestions := u.engine.Suggest(scope, contents, campaigns)
	return &port.SuggestionsResp{
		Suggestions: suggestions,
		Total:       len(suggestions),
		AnalyzedAt:  u.now().UTC(),
	}, nil
}

// ProjectMetrics builds the consolidated report of a project.
func (u *AnalyticsUseCase) ProjectMetrics(ctx context.Context, projectID uuid.UUID) (*analytics.ProjectReport, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project_id is required", port.ErrInvalidInput)
	}
	var (
		project   *domain.Project
		contents  []domain.Content
		campaigns []domain.Campaign
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = u.projects.GetProject(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		contents, campaigns, err = u.load(gctx, projectID, true, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", port.ErrNotFound, projectID)
	}
	report := analytics.BuildReport(*project, contents, campaigns)
	return &report, nil
}

// load fetches the requested collections concurrently.
func (u *AnalyticsUseCase) load(ctx context.Context, projectID uuid.UUID, withContents, withCampaigns bool) ([]domain.Content, []domain.Campaign, error) {
	var (
		contents  []domain.Content
		campaigns []domain.Campaign
	)
	g, gctx := errgroup.WithContext(ctx)
	if withContents {
		g.Go(func() error {
			var err error
			contents, err = u.contents.ListContents(gctx, projectID, nil)
			if err != nil {
				return fmt.Errorf("list contents: %w", err)
			}
			return nil
		})
	}
	if withCampaigns {
		g.Go(func() error {
			var err error
			campaigns, err = u.campaigns.ListCampaigns(gctx, projectID, nil)
			if err != nil {
				return fmt.Errorf("list campaigns: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return contents, campaigns, nil
}

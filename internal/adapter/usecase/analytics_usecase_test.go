package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"control-ads/internal/core/analytics"
	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
	"control-ads/internal/core/port/mocks"
)

type analyticsFixture struct {
	projects  *mocks.MockProjectRepository
	campaigns *mocks.MockCampaignRepository
	contents  *mocks.MockContentRepository
	svc       *AnalyticsUseCase
}

func newAnalyticsFixture(t *testing.T) analyticsFixture {
	fx := analyticsFixture{
		projects:  mocks.NewMockProjectRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		contents:  mocks.NewMockContentRepository(t),
	}
	fx.svc = NewAnalyticsUseCase(fx.projects, fx.campaigns, fx.contents, nil)
	fx.svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return fx
}

func growthContents() []domain.Content {
	return []domain.Content{
		{Identifier: "p1", Category: domain.CategoryC1, CostPerFollower: f(1)},
		{Identifier: "p2", Category: domain.CategoryC1, CostPerFollower: f(1)},
		{Identifier: "p3", Category: domain.CategoryC1, CostPerFollower: f(1)},
		{Identifier: "p4", Category: domain.CategoryC1, CostPerFollower: f(10)},
	}
}

func TestSuggestionsContentScopeSkipsCampaigns(t *testing.T) {
	fx := newAnalyticsFixture(t)
	projectID := uuid.New()
	fx.contents.EXPECT().ListContents(mock.Anything, projectID, (*domain.Category)(nil)).Return(growthContents(), nil)

	resp, err := fx.svc.Suggestions(context.Background(), port.SuggestionsReq{ProjectID: projectID, Scope: analytics.ScopeContent})
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, analytics.LabelFollowerCost, resp.Suggestions[0].Category)
	assert.Equal(t, []string{"p4"}, resp.Suggestions[0].Affected)
	assert.Equal(t, analytics.LabelBestPractices, resp.Suggestions[1].Category)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), resp.AnalyzedAt)
}

func TestSuggestionsGeneralScope(t *testing.T) {
	fx := newAnalyticsFixture(t)
	projectID := uuid.New()
	fx.contents.EXPECT().ListContents(mock.Anything, projectID, (*domain.Category)(nil)).Return(nil, nil)
	fx.campaigns.EXPECT().ListCampaigns(mock.Anything, projectID, (*domain.Category)(nil)).Return([]domain.Campaign{
		{Name: "hot", Category: domain.CategoryC2, AverageFrequency: f(3.01)},
		{Name: "ok", Category: domain.CategoryC2, AverageFrequency: f(3.0)},
	}, nil)

	resp, err := fx.svc.Suggestions(context.Background(), port.SuggestionsReq{ProjectID: projectID})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, analytics.LabelFrequency, resp.Suggestions[0].Category)
	assert.Equal(t, []string{"hot"}, resp.Suggestions[0].Affected)
}

func TestSuggestionsEmptyProject(t *testing.T) {
	fx := newAnalyticsFixture(t)
	projectID := uuid.New()
	fx.campaigns.EXPECT().ListCampaigns(mock.Anything, projectID, (*domain.Category)(nil)).Return(nil, nil)

	resp, err := fx.svc.Suggestions(context.Background(), port.SuggestionsReq{ProjectID: projectID, Scope: analytics.ScopeCampaign})
	require.NoError(t, err)
	assert.NotNil(t, resp.Suggestions)
	assert.Zero(t, resp.Total)
}

func TestSuggestionsRequiresProject(t *testing.T) {
	fx := newAnalyticsFixture(t)
	_, err := fx.svc.Suggestions(context.Background(), port.SuggestionsReq{})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestSuggestionsStoreFailure(t *testing.T) {
	fx := newAnalyticsFixture(t)
	projectID := uuid.New()
	boom := errors.New("timeout")
	fx.contents.EXPECT().ListContents(mock.Anything, projectID, (*domain.Category)(nil)).Return(nil, boom)
	fx.campaigns.EXPECT().ListCampaigns(mock.Anything, projectID, (*domain.Category)(nil)).Return(nil, nil).Maybe()

	_, err := fx.svc.Suggestions(context.Background(), port.SuggestionsReq{ProjectID: projectID})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "timeout")
}

func TestProjectMetrics(t *testing.T) {
	fx := newAnalyticsFixture(t)
	projectID := uuid.New()
	fx.projects.EXPECT().GetProject(mock.Anything, projectID).Return(project(projectID), nil)
	fx.contents.EXPECT().ListContents(mock.Anything, projectID, (*domain.Category)(nil)).Return(growthContents(), nil)
	fx.campaigns.EXPECT().ListCampaigns(mock.Anything, projectID, (*domain.Category)(nil)).Return(nil, nil)

	report, err := fx.svc.ProjectMetrics(context.Background(), projectID)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Overview.TotalContents)
	assert.Equal(t, 4, report.Overview.ContentsByCategory[domain.CategoryC1])
	require.NotNil(t, report.FollowerGrowth)
	assert.InDelta(t, 3.25, report.FollowerGrowth.AvgCostPerFollower, 1e-9)
	assert.Nil(t, report.Engagement)
	assert.Nil(t, report.Campaigns)
}

func TestProjectMetricsUnknownProject(t *testing.T) {
	fx := newAnalyticsFixture(t)
	projectID := uuid.New()
	fx.projects.EXPECT().GetProject(mock.Anything, projectID).Return(nil, nil)
	fx.contents.EXPECT().ListContents(mock.Anything, projectID, (*domain.Category)(nil)).Return(nil, nil).Maybe()
	fx.campaigns.EXPECT().ListCampaigns(mock.Anything, projectID, (*domain.Category)(nil)).Return(nil, nil).Maybe()

	_, err := fx.svc.ProjectMetrics(context.Background(), projectID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

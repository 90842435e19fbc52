package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
	"control-ads/internal/core/port/mocks"
)

type campaignFixture struct {
	projects  *mocks.MockProjectRepository
	campaigns *mocks.MockCampaignRepository
	contents  *mocks.MockContentRepository
	svc       *CampaignUseCase
}

func newCampaignFixture(t *testing.T) campaignFixture {
	fx := campaignFixture{
		projects:  mocks.NewMockProjectRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		contents:  mocks.NewMockContentRepository(t),
	}
	fx.svc = NewCampaignUseCase(fx.projects, fx.campaigns, fx.contents)
	return fx
}

func TestCreateCampaign(t *testing.T) {
	fx := newCampaignFixture(t)
	projectID := uuid.New()
	fx.projects.EXPECT().GetProject(mock.Anything, projectID).Return(project(projectID), nil)
	fx.campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		RunAndReturn(func(_ context.Context, c domain.Campaign) (*domain.Campaign, error) {
			c.ID = uuid.New()
			return &c, nil
		})

	c, err := fx.svc.CreateCampaign(context.Background(), domain.Campaign{
		ProjectID: projectID,
		Name:      " Spring launch ",
		Category:  domain.CategoryC3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring launch", c.Name)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestCreateCampaignRejectsGrowthCategory(t *testing.T) {
	fx := newCampaignFixture(t)
	_, err := fx.svc.CreateCampaign(context.Background(), domain.Campaign{
		ProjectID: uuid.New(),
		Name:      "Followers",
		Category:  domain.CategoryC1,
	})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestCreateCampaignUnknownProject(t *testing.T) {
	fx := newCampaignFixture(t)
	projectID := uuid.New()
	fx.projects.EXPECT().GetProject(mock.Anything, projectID).Return(nil, nil)

	_, err := fx.svc.CreateCampaign(context.Background(), domain.Campaign{
		ProjectID: projectID,
		Name:      "Orphan",
		Category:  domain.CategoryC2,
	})
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCreateCampaignRequiresProjectID(t *testing.T) {
	fx := newCampaignFixture(t)
	_, err := fx.svc.CreateCampaign(context.Background(), domain.Campaign{Name: "x", Category: domain.CategoryC2})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestListCampaignsRequiresProject(t *testing.T) {
	fx := newCampaignFixture(t)
	_, err := fx.svc.ListCampaigns(context.Background(), uuid.Nil, nil)
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestUpdateCampaignRejectsCategory(t *testing.T) {
	fx := newCampaignFixture(t)
	c1 := domain.CategoryC1
	_, err := fx.svc.UpdateCampaign(context.Background(), uuid.New(), domain.CampaignUpdate{Category: &c1})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestAttachContent(t *testing.T) {
	fx := newCampaignFixture(t)
	campaignID, contentID := uuid.New(), uuid.New()
	fx.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&domain.Campaign{ID: campaignID}, nil)
	fx.contents.EXPECT().GetContent(mock.Anything, contentID).Return(&domain.Content{ID: contentID}, nil)
	fx.campaigns.EXPECT().AttachContent(mock.Anything, campaignID, contentID).Return(nil)

	require.NoError(t, fx.svc.AttachContent(context.Background(), campaignID, contentID))
}

func TestAttachMissingContent(t *testing.T) {
	fx := newCampaignFixture(t)
	campaignID, contentID := uuid.New(), uuid.New()
	fx.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&domain.Campaign{ID: campaignID}, nil)
	fx.contents.EXPECT().GetContent(mock.Anything, contentID).Return(nil, nil)

	err := fx.svc.AttachContent(context.Background(), campaignID, contentID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestDetachContentNotAttached(t *testing.T) {
	fx := newCampaignFixture(t)
	campaignID, contentID := uuid.New(), uuid.New()
	fx.campaigns.EXPECT().DetachContent(mock.Anything, campaignID, contentID).Return(false, nil)

	err := fx.svc.DetachContent(context.Background(), campaignID, contentID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestListCampaignContents(t *testing.T) {
	fx := newCampaignFixture(t)
	campaignID := uuid.New()
	attached := []domain.Content{{Identifier: "reel-1"}, {Identifier: "reel-2"}}
	fx.campaigns.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&domain.Campaign{ID: campaignID}, nil)
	fx.campaigns.EXPECT().ListCampaignContents(mock.Anything, campaignID).Return(attached, nil)

	got, err := fx.svc.ListCampaignContents(context.Background(), campaignID)
	require.NoError(t, err)
	assert.Equal(t, attached, got)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
	"control-ads/internal/core/port/mocks"
)

func TestCreateContent(t *testing.T) {
	projects := mocks.NewMockProjectRepository(t)
	contents := mocks.NewMockContentRepository(t)
	projectID := uuid.New()

	projects.EXPECT().GetProject(mock.Anything, projectID).Return(project(projectID), nil)
	contents.EXPECT().
		CreateContent(mock.Anything, mock.MatchedBy(func(c domain.Content) bool { return c.Identifier == "post-1" })).
		RunAndReturn(func(_ context.Context, c domain.Content) (*domain.Content, error) {
			c.ID = uuid.New()
			c.CostPerFollower = f(2)
			return &c, nil
		})

	svc := NewContentUseCase(projects, contents)
	c, err := svc.CreateContent(context.Background(), domain.Content{
		ProjectID:       projectID,
		Identifier:      "post-1 ",
		Category:        domain.CategoryC1,
		Spend:           f(20),
		FollowersBefore: n(100),
		FollowersAfter:  n(110),
	})
	require.NoError(t, err)
	require.NotNil(t, c.Cost())
	assert.InDelta(t, 2.0, *c.Cost(), 1e-9)
}

func TestCreateContentValidation(t *testing.T) {
	svc := NewContentUseCase(mocks.NewMockProjectRepository(t), mocks.NewMockContentRepository(t))

	_, err := svc.CreateContent(context.Background(), domain.Content{ProjectID: uuid.New()})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err = svc.CreateContent(context.Background(), domain.Content{
		ProjectID:  uuid.New(),
		Identifier: "reel",
		BoostStart: &start,
		BoostEnd:   &end,
	})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestDeleteContentMissing(t *testing.T) {
	contents := mocks.NewMockContentRepository(t)
	id := uuid.New()
	contents.EXPECT().DeleteContent(mock.Anything, id).Return(false, nil)

	err := NewContentUseCase(mocks.NewMockProjectRepository(t), contents).DeleteContent(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestBestCreativesRanksPerCategory(t *testing.T) {
	contents := mocks.NewMockContentRepository(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	contents.EXPECT().ListBoostedContents(mock.Anything, &from, &to).Return([]domain.Content{
		{Identifier: "a", Category: domain.CategoryC1, CostPerFollower: f(3)},
		{Identifier: "b", Category: domain.CategoryC1, CostPerFollower: f(1)},
		{Identifier: "c", Category: domain.CategoryC2, CostPerEngagement: f(0.5)},
	}, nil)

	svc := NewContentUseCase(mocks.NewMockProjectRepository(t), contents)
	got, err := svc.BestCreatives(context.Background(), port.BestCreativesReq{From: &from, To: &to})
	require.NoError(t, err)

	require.Len(t, got[domain.CategoryC1], 2)
	assert.Equal(t, "b", got[domain.CategoryC1][0].Identifier)
	assert.Len(t, got[domain.CategoryC2], 1)
	assert.Contains(t, got, domain.CategoryC3)
	assert.Empty(t, got[domain.CategoryC4])
}

func TestBestCreativesRejectsInvertedWindow(t *testing.T) {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	svc := NewContentUseCase(mocks.NewMockProjectRepository(t), mocks.NewMockContentRepository(t))
	_, err := svc.BestCreatives(context.Background(), port.BestCreativesReq{From: &from, To: &to})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

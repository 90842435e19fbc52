package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"control-ads/internal/core/domain"
)

func TestBuildReportEmpty(t *testing.T) {
	project := domain.Project{ID: uuid.New(), Name: "empty"}

	r := BuildReport(project, nil, nil)
	assert.Equal(t, project, r.Project)
	assert.Zero(t, r.Overview.TotalContents)
	assert.Zero(t, r.Overview.TotalCampaigns)
	for _, cat := range domain.Categories {
		count, ok := r.Overview.ContentsByCategory[cat]
		assert.True(t, ok)
		assert.Zero(t, count)
	}
	assert.Nil(t, r.FollowerGrowth)
	assert.Nil(t, r.Engagement)
	assert.Nil(t, r.Campaigns)
}

func TestBuildReportBlocks(t *testing.T) {
	growthA := content("g1", domain.CategoryC1, f(2))
	growthA.Spend = f(100)
	growthA.FollowersBefore, growthA.FollowersAfter = n(1000), n(1050)
	growthB := content("g2", domain.CategoryC1, f(4))
	growthB.Spend = f(50)
	growthB.FollowersBefore = n(10)
	growthC := content("g3", domain.CategoryC1, nil)

	nurture := content("n1", domain.CategoryC3, nil)
	nurture.Spend = f(30)
	nurture.Engagement = n(120)

	campaigns := []domain.Campaign{
		{Name: "k1", Category: domain.CategoryC2, TotalSpend: f(10), TotalReach: n(500), TotalEngagement: n(40)},
		{Name: "k2", Category: domain.CategoryC4, TotalSpend: f(5.5)},
		{Name: "k3", Category: domain.CategoryC2},
	}

	r := BuildReport(domain.Project{Name: "p"}, []domain.Content{growthA, growthB, growthC, nurture}, campaigns)

	assert.Equal(t, 4, r.Overview.TotalContents)
	assert.Equal(t, 3, r.Overview.ContentsByCategory[domain.CategoryC1])
	assert.Equal(t, 1, r.Overview.ContentsByCategory[domain.CategoryC3])

	require.NotNil(t, r.FollowerGrowth)
	assert.Equal(t, 150.0, r.FollowerGrowth.TotalSpend)
	assert.Equal(t, int64(50), r.FollowerGrowth.FollowersGained)
	assert.Equal(t, 3.0, r.FollowerGrowth.AvgCostPerFollower)
	assert.Equal(t, 2.0, r.FollowerGrowth.BestCostPerFollower)
	assert.Equal(t, 4.0, r.FollowerGrowth.WorstCostPerFollower)

	require.NotNil(t, r.Engagement)
	assert.Equal(t, 30.0, r.Engagement.TotalSpend)
	assert.Equal(t, int64(120), r.Engagement.TotalEngagement)
	assert.Zero(t, r.Engagement.AvgCostPerEngagement)
	assert.Zero(t, r.Engagement.BestCostPerEngagement)

	require.NotNil(t, r.Campaigns)
	assert.Equal(t, 3, r.Campaigns.TotalCampaigns)
	assert.Equal(t, 15.5, r.Campaigns.TotalSpend)
	assert.Equal(t, int64(500), r.Campaigns.TotalReach)
	assert.Equal(t, int64(40), r.Campaigns.TotalEngagement)
	assert.Equal(t, 2, r.Campaigns.CampaignsByCategory[domain.CategoryC2])
	assert.Equal(t, 0, r.Campaigns.CampaignsByCategory[domain.CategoryC3])
	assert.Equal(t, 1, r.Campaigns.CampaignsByCategory[domain.CategoryC4])
}

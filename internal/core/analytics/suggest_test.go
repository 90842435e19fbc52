package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"control-ads/internal/core/domain"
)

func campaign(name string, freq, cpe *float64) domain.Campaign {
	return domain.Campaign{Name: name, Category: domain.CategoryC2, AverageFrequency: freq, CostPerEngagement: cpe}
}

func TestFollowerCostRules(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	contents := []domain.Content{
		content("a", domain.CategoryC1, f(1)),
		content("b", domain.CategoryC1, f(1)),
		content("c", domain.CategoryC1, f(1)),
		content("d", domain.CategoryC1, f(10)),
		content("unmeasured", domain.CategoryC1, nil),
	}

	got := engine.ContentSuggestions(contents)
	require.Len(t, got, 2)

	elevated := got[0]
	assert.Equal(t, domain.SuggestionOptimization, elevated.Type)
	assert.Equal(t, domain.PriorityHigh, elevated.Priority)
	assert.Equal(t, LabelFollowerCost, elevated.Category)
	assert.Equal(t, []string{"d"}, elevated.Affected)
	assert.Contains(t, elevated.Description, "3.25")

	best := got[1]
	assert.Equal(t, domain.SuggestionOpportunity, best.Type)
	assert.Equal(t, domain.PriorityMedium, best.Priority)
	assert.Equal(t, []string{"a", "b", "c"}, best.Affected)
	assert.Contains(t, best.Description, `"a"`)
	assert.Contains(t, best.Description, "1.00")
}

func TestEngagementCostRule(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	contents := []domain.Content{
		content("x", domain.CategoryC2, f(1)),
		content("y", domain.CategoryC3, f(1)),
		content("z", domain.CategoryC4, f(1)),
		content("w", domain.CategoryC2, f(2)),
	}

	got := engine.ContentSuggestions(contents)
	require.Len(t, got, 1)
	assert.Equal(t, LabelEngagementCost, got[0].Category)
	assert.Equal(t, domain.PriorityHigh, got[0].Priority)
	assert.Equal(t, []string{"w"}, got[0].Affected)
	assert.Contains(t, got[0].Description, "1.25")
}

func TestRetentionRule(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	low := content("low", domain.CategoryC2, nil)
	low.Video = domain.VideoCompletion{P25: n(100), P100: n(20)}
	fine := content("fine", domain.CategoryC2, nil)
	fine.Video = domain.VideoCompletion{P25: n(100), P100: n(40)}
	zero := content("zero-start", domain.CategoryC3, nil)
	zero.Video = domain.VideoCompletion{P25: n(0), P100: n(0)}
	partial := content("partial", domain.CategoryC4, nil)
	partial.Video = domain.VideoCompletion{P25: n(100)}
	growth := content("growth", domain.CategoryC1, nil)
	growth.Video = domain.VideoCompletion{P25: n(100), P100: n(1)}

	got := engine.ContentSuggestions([]domain.Content{low, fine, zero, partial, growth})
	require.Len(t, got, 1)
	assert.Equal(t, LabelVideoRetention, got[0].Category)
	assert.Equal(t, []string{"low"}, got[0].Affected)
	assert.Contains(t, got[0].Description, "20.0%")
}

func TestFrequencyRule(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	got := engine.CampaignSuggestions([]domain.Campaign{
		campaign("over", f(3.01), nil),
		campaign("at-limit", f(3.0), nil),
		campaign("unknown", nil, nil),
		campaign("way-over", f(7), nil),
	})

	require.Len(t, got, 1)
	assert.Equal(t, domain.SuggestionAlert, got[0].Type)
	assert.Equal(t, domain.PriorityHigh, got[0].Priority)
	assert.Equal(t, []string{"over", "way-over"}, got[0].Affected)
	assert.Contains(t, got[0].Description, "2 campaign(s)")
}

func TestCampaignCostRule(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	got := engine.CampaignSuggestions([]domain.Campaign{
		campaign("a", nil, f(1)),
		campaign("b", nil, f(1)),
		campaign("c", nil, f(1)),
		campaign("d", nil, f(4)),
		campaign("e", nil, nil),
	})

	require.Len(t, got, 1)
	assert.Equal(t, LabelCampaignCost, got[0].Category)
	assert.Equal(t, domain.PriorityMedium, got[0].Priority)
	assert.Equal(t, []string{"d"}, got[0].Affected)
	assert.Contains(t, got[0].Description, "1.75")
}

func TestThruPlayRule(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	low := domain.Campaign{Name: "low", ThruPlayTotal: n(10), TotalReach: n(100)}
	ok := domain.Campaign{Name: "ok", ThruPlayTotal: n(20), TotalReach: n(100)}
	noReach := domain.Campaign{Name: "no-reach", ThruPlayTotal: n(10), TotalReach: n(0)}
	noPlays := domain.Campaign{Name: "no-plays", TotalReach: n(100)}

	got := engine.CampaignSuggestions([]domain.Campaign{low, ok, noReach, noPlays})
	require.Len(t, got, 1)
	assert.Equal(t, LabelVideoEngagement, got[0].Category)
	assert.Equal(t, []string{"low"}, got[0].Affected)
	assert.Contains(t, got[0].Description, "10.0%")
}

func TestSuggestScopeAndOrder(t *testing.T) {
	engine := NewEngine(Thresholds{})
	contents := []domain.Content{
		content("a", domain.CategoryC1, f(1)),
		content("b", domain.CategoryC1, f(10)),
		content("c", domain.CategoryC1, f(1)),
		content("d", domain.CategoryC1, f(1)),
	}
	campaigns := []domain.Campaign{campaign("hot", f(4), nil)}

	general := engine.Suggest(ScopeGeneral, contents, campaigns)
	require.Len(t, general, 3)
	assert.Equal(t, LabelFollowerCost, general[0].Category)
	assert.Equal(t, LabelBestPractices, general[1].Category)
	assert.Equal(t, LabelFrequency, general[2].Category)

	onlyContent := engine.Suggest(ScopeContent, contents, campaigns)
	assert.Len(t, onlyContent, 2)

	onlyCampaign := engine.Suggest(ScopeCampaign, contents, campaigns)
	require.Len(t, onlyCampaign, 1)
	assert.Equal(t, LabelFrequency, onlyCampaign[0].Category)

	assert.Equal(t, general, engine.Suggest(ScopeGeneral, contents, campaigns))
}

func TestSuggestEmptyInput(t *testing.T) {
	got := NewEngine(DefaultThresholds()).Suggest(ScopeGeneral, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCustomThresholds(t *testing.T) {
	engine := NewEngine(Thresholds{MaxFrequency: 5})
	assert.Equal(t, DefaultFollowerCostFactor, engine.Thresholds().FollowerCostFactor)

	got := engine.CampaignSuggestions([]domain.Campaign{campaign("four", f(4), nil)})
	assert.Empty(t, got)
}

func TestParseScope(t *testing.T) {
	for in, want := range map[string]Scope{
		"":         ScopeGeneral,
		"general":  ScopeGeneral,
		"Content":  ScopeContent,
		"campaign": ScopeCampaign,
	} {
		got, err := ParseScope(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseScope("everything")
	assert.Error(t, err)
}

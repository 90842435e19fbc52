package analytics

import (
	"fmt"
	"strings"

	"control-ads/internal/core/domain"
)

// Scope selects which rule groups the engine evaluates.
type Scope string

const (
	ScopeContent  Scope = "content"
	ScopeCampaign Scope = "campaign"
	ScopeGeneral  Scope = "general"
)

// ParseScope parses an analysis scope. An empty string selects ScopeGeneral.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeGeneral:
		return ScopeGeneral, nil
	case ScopeContent:
		return ScopeContent, nil
	case ScopeCampaign:
		return ScopeCampaign, nil
	default:
		return "", fmt.Errorf("unknown analysis scope %q", s)
	}
}

// IncludesContent reports whether content rules run in this scope.
func (s Scope) IncludesContent() bool { return s == ScopeContent || s == ScopeGeneral }

// IncludesCampaigns reports whether campaign rules run in this scope.
func (s Scope) IncludesCampaigns() bool { return s == ScopeCampaign || s == ScopeGeneral }

// Rule thresholds. Factors multiply the mean of the metric; percentages are
// on a 0-100 scale.
const (
	DefaultFollowerCostFactor   = 1.5
	DefaultEngagementCostFactor = 1.3
	DefaultMinRetentionPct      = 30.0
	DefaultMaxFrequency         = 3.0
	DefaultCampaignCostFactor   = 1.5
	DefaultMinThruPlayRatePct   = 15.0
)

// Suggestion category labels.
const (
	LabelFollowerCost    = "C1 - Cost per Follower"
	LabelBestPractices   = "C1 - Best Practices"
	LabelEngagementCost  = "C2-C4 - Cost per Engagement"
	LabelVideoRetention  = "Video Retention"
	LabelFrequency       = "Ad Frequency"
	LabelCampaignCost    = "Campaign Efficiency"
	LabelVideoEngagement = "Video Engagement"
)

// Thresholds configures the rule battery.
type Thresholds struct {
	FollowerCostFactor   float64
	EngagementCostFactor float64
	MinRetentionPct      float64
	MaxFrequency         float64
	CampaignCostFactor   float64
	MinThruPlayRatePct   float64
}

// DefaultThresholds returns the stock rule thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FollowerCostFactor:   DefaultFollowerCostFactor,
		EngagementCostFactor: DefaultEngagementCostFactor,
		MinRetentionPct:      DefaultMinRetentionPct,
		MaxFrequency:         DefaultMaxFrequency,
		CampaignCostFactor:   DefaultCampaignCostFactor,
		MinThruPlayRatePct:   DefaultMinThruPlayRatePct,
	}
}

// Engine evaluates the suggestion rules. It is stateless and safe for
// concurrent use.
type Engine struct {
	th Thresholds
}

// NewEngine returns an engine using th. Zero thresholds fall back to the
// defaults.
func NewEngine(th Thresholds) *Engine {
	d := DefaultThresholds()
	if th.FollowerCostFactor <= 0 {
		th.FollowerCostFactor = d.FollowerCostFactor
	}
	if th.EngagementCostFactor <= 0 {
		th.EngagementCostFactor = d.EngagementCostFactor
	}
	if th.MinRetentionPct <= 0 {
		th.MinRetentionPct = d.MinRetentionPct
	}
	if th.MaxFrequency <= 0 {
		th.MaxFrequency = d.MaxFrequency
	}
	if th.CampaignCostFactor <= 0 {
		th.CampaignCostFactor = d.CampaignCostFactor
	}
	if th.MinThruPlayRatePct <= 0 {
		th.MinThruPlayRatePct = d.MinThruPlayRatePct
	}
	return &Engine{th: th}
}

// Thresholds returns the thresholds in effect.
func (e *Engine) Thresholds() Thresholds { return e.th }

// Suggest runs the rule groups selected by scope. Content suggestions come
// first, then campaign suggestions; per-record rules keep input order.
func (e *Engine) Suggest(scope Scope, contents []domain.Content, campaigns []domain.Campaign) []domain.Suggestion {
	out := make([]domain.Suggestion, 0)
	if scope.IncludesContent() {
		out = append(out, e.ContentSuggestions(contents)...)
	}
	if scope.IncludesCampaigns() {
		out = append(out, e.CampaignSuggestions(campaigns)...)
	}
	return out
}

// ContentSuggestions evaluates the content rules.
func (e *Engine) ContentSuggestions(contents []domain.Content) []domain.Suggestion {
	var (
		out       []domain.Suggestion
		growth    []domain.Content
		nurturing []domain.Content
	)
	for _, c := range contents {
		switch c.Category.CostMetric() {
		case domain.CostPerFollower:
			growth = append(growth, c)
		case domain.CostPerEngagement:
			nurturing = append(nurturing, c)
		}
	}

	costPerFollower := func(c domain.Content) *float64 { return c.CostPerFollower }
	if s, ok := Aggregate(growth, costPerFollower); ok {
		limit := s.Mean * e.th.FollowerCostFactor
		if flagged := identifiers(growth, func(c domain.Content) bool {
			return c.CostPerFollower != nil && *c.CostPerFollower > limit
		}); len(flagged) > 0 {
			out = append(out, domain.Suggestion{
				Type:        domain.SuggestionOptimization,
				Category:    LabelFollowerCost,
				Priority:    domain.PriorityHigh,
				Title:       "C1 contents with elevated cost per follower",
				Description: fmt.Sprintf("%d C1 content(s) cost more per follower than the average (%.2f). Consider reviewing targeting, creative or budget.", len(flagged), s.Mean),
				Affected:    flagged,
				Action:      "Review targeting, test new creatives or adjust the daily budget",
			})
		}

		best := identifiers(growth, func(c domain.Content) bool {
			return c.CostPerFollower != nil && *c.CostPerFollower == s.Min
		})
		out = append(out, domain.Suggestion{
			Type:        domain.SuggestionOpportunity,
			Category:    LabelBestPractices,
			Priority:    domain.PriorityMedium,
			Title:       "Replicate the strategy of the best C1 contents",
			Description: fmt.Sprintf("Content %q has the best cost per follower (%.2f). Consider replicating elements of this creative.", best[0], s.Min),
			Affected:    best,
			Action:      "Analyse visuals, copy and targeting of the best performers",
		})
	}

	costPerEngagement := func(c domain.Content) *float64 { return c.CostPerEngagement }
	if s, ok := Aggregate(nurturing, costPerEngagement); ok {
		limit := s.Mean * e.th.EngagementCostFactor
		if flagged := identifiers(nurturing, func(c domain.Content) bool {
			return c.CostPerEngagement != nil && *c.CostPerEngagement > limit
		}); len(flagged) > 0 {
			out = append(out, domain.Suggestion{
				Type:        domain.SuggestionOptimization,
				Category:    LabelEngagementCost,
				Priority:    domain.PriorityHigh,
				Title:       "Nurture contents with elevated cost per engagement",
				Description: fmt.Sprintf("%d nurture content(s) cost more per engagement than the average (%.2f).", len(flagged), s.Mean),
				Affected:    flagged,
				Action:      "Review content relevance for the audience and test new formats",
			})
		}
	}

	for _, c := range nurturing {
		retention, ok := retentionRate(c.Video)
		if !ok || retention >= e.th.MinRetentionPct {
			continue
		}
		out = append(out, domain.Suggestion{
			Type:        domain.SuggestionOptimization,
			Category:    LabelVideoRetention,
			Priority:    domain.PriorityMedium,
			Title:       fmt.Sprintf("Low retention on video %q", c.Identifier),
			Description: fmt.Sprintf("Retention rate of only %.1f%%. Many viewers do not watch until the end.", retention),
			Affected:    []string{c.Identifier},
			Action:      "Review the opening hook, pacing and call-to-action",
		})
	}
	return out
}

// CampaignSuggestions evaluates the campaign rules.
func (e *Engine) CampaignSuggestions(campaigns []domain.Campaign) []domain.Suggestion {
	var out []domain.Suggestion

	var frequent []string
	for _, c := range campaigns {
		if c.AverageFrequency != nil && *c.AverageFrequency > e.th.MaxFrequency {
			frequent = append(frequent, c.Name)
		}
	}
	if len(frequent) > 0 {
		out = append(out, domain.Suggestion{
			Type:        domain.SuggestionAlert,
			Category:    LabelFrequency,
			Priority:    domain.PriorityHigh,
			Title:       "Campaigns with frequency too high",
			Description: fmt.Sprintf("%d campaign(s) with frequency above %.1f. Risk of audience fatigue.", len(frequent), e.th.MaxFrequency),
			Affected:    frequent,
			Action:      "Broaden the audience or pause temporarily to avoid saturation",
		})
	}

	if s, ok := Aggregate(campaigns, func(c domain.Campaign) *float64 { return c.CostPerEngagement }); ok {
		limit := s.Mean * e.th.CampaignCostFactor
		var costly []string
		for _, c := range campaigns {
			if c.CostPerEngagement != nil && *c.CostPerEngagement > limit {
				costly = append(costly, c.Name)
			}
		}
		if len(costly) > 0 {
			out = append(out, domain.Suggestion{
				Type:        domain.SuggestionOptimization,
				Category:    LabelCampaignCost,
				Priority:    domain.PriorityMedium,
				Title:       "Campaigns with low engagement efficiency",
				Description: fmt.Sprintf("%d campaign(s) with cost per engagement above the average (%.2f).", len(costly), s.Mean),
				Affected:    costly,
				Action:      "Review audience segmentation and optimise creatives",
			})
		}
	}

	for _, c := range campaigns {
		if c.ThruPlayTotal == nil || c.TotalReach == nil || *c.TotalReach <= 0 {
			continue
		}
		rate := float64(*c.ThruPlayTotal) / float64(*c.TotalReach) * 100
		if rate >= e.th.MinThruPlayRatePct {
			continue
		}
		out = append(out, domain.Suggestion{
			Type:        domain.SuggestionOptimization,
			Category:    LabelVideoEngagement,
			Priority:    domain.PriorityMedium,
			Title:       fmt.Sprintf("Low ThruPlay rate on campaign %q", c.Name),
			Description: fmt.Sprintf("ThruPlay rate of only %.1f%%. The content may not be capturing attention.", rate),
			Affected:    []string{c.Name},
			Action:      "Test new hooks, video formats or adjust duration",
		})
	}
	return out
}

// retentionRate is the share of 25% viewers that reached 100%, in percent.
func retentionRate(v domain.VideoCompletion) (float64, bool) {
	if v.P25 == nil || v.P100 == nil || *v.P25 <= 0 {
		return 0, false
	}
	return float64(*v.P100) / float64(*v.P25) * 100, true
}

func identifiers(contents []domain.Content, match func(domain.Content) bool) []string {
	var ids []string
	for _, c := range contents {
		if match(c) {
			ids = append(ids, c.Identifier)
		}
	}
	return ids
}

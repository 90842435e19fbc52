package configs

import "control-ads/internal/core/analytics"

// Analytics overrides the suggestion rule thresholds.
type Analytics struct {
	FollowerCostFactor   float64 `env:"FOLLOWER_COST_FACTOR" envDefault:"1.5"`
	EngagementCostFactor float64 `env:"ENGAGEMENT_COST_FACTOR" envDefault:"1.3"`
	MinRetentionPct      float64 `env:"MIN_RETENTION_PCT" envDefault:"30"`
	MaxFrequency         float64 `env:"MAX_FREQUENCY" envDefault:"3.0"`
	CampaignCostFactor   float64 `env:"CAMPAIGN_COST_FACTOR" envDefault:"1.5"`
	MinThruPlayRatePct   float64 `env:"MIN_THRUPLAY_RATE_PCT" envDefault:"15"`
}

// Thresholds converts the configuration into engine thresholds.
func (c Analytics) Thresholds() analytics.Thresholds {
	return analytics.Thresholds{
		FollowerCostFactor:   c.FollowerCostFactor,
		EngagementCostFactor: c.EngagementCostFactor,
		MinRetentionPct:      c.MinRetentionPct,
		MaxFrequency:         c.MaxFrequency,
		CampaignCostFactor:   c.CampaignCostFactor,
		MinThruPlayRatePct:   c.MinThruPlayRatePct,
	}
}

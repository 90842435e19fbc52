package analytics

import "control-ads/internal/core/domain"

// ProjectReport is the consolidated metrics view of a project. Blocks whose
// population is empty are nil.
type ProjectReport struct {
	Project        domain.Project         `json:"project"`
	Overview       Overview               `json:"overview"`
	FollowerGrowth *FollowerGrowthMetrics `json:"c1_metrics"`
	Engagement     *EngagementMetrics     `json:"c2_c4_metrics"`
	Campaigns      *CampaignMetrics       `json:"campaign_metrics"`
}

// Overview counts the entities of a project.
type Overview struct {
	TotalContents      int                     `json:"total_contents"`
	TotalCampaigns     int                     `json:"total_campaigns"`
	ContentsByCategory map[domain.Category]int `json:"contents_by_category"`
}

// FollowerGrowthMetrics summarises C1 contents.
type FollowerGrowthMetrics struct {
	TotalSpend           float64 `json:"total_spend"`
	FollowersGained      int64   `json:"followers_gained"`
	AvgCostPerFollower   float64 `json:"avg_cost_per_follower"`
	BestCostPerFollower  float64 `json:"best_cost_per_follower"`
	WorstCostPerFollower float64 `json:"worst_cost_per_follower"`
}

// EngagementMetrics summarises C2..C4 contents.
type EngagementMetrics struct {
	TotalSpend             float64 `json:"total_spend"`
	TotalEngagement        int64   `json:"total_engagement"`
	AvgCostPerEngagement   float64 `json:"avg_cost_per_engagement"`
	BestCostPerEngagement  float64 `json:"best_cost_per_engagement"`
	WorstCostPerEngagement float64 `json:"worst_cost_per_engagement"`
}

// CampaignMetrics summarises the campaigns of a project.
type CampaignMetrics struct {
	TotalCampaigns      int                     `json:"total_campaigns"`
	TotalSpend          float64                 `json:"total_spend"`
	TotalEngagement     int64                   `json:"total_engagement"`
	TotalReach          int64                   `json:"total_reach"`
	CampaignsByCategory map[domain.Category]int `json:"campaigns_by_category"`
}

// BuildReport composes the consolidated report. Empty aggregates are
// reported as zero.
func BuildReport(project domain.Project, contents []domain.Content, campaigns []domain.Campaign) ProjectReport {
	r := ProjectReport{
		Project: project,
		Overview: Overview{
			TotalContents:      len(contents),
			TotalCampaigns:     len(campaigns),
			ContentsByCategory: make(map[domain.Category]int, len(domain.Categories)),
		},
	}
	for _, cat := range domain.Categories {
		r.Overview.ContentsByCategory[cat] = 0
	}

	var growth, nurturing []domain.Content
	for _, c := range contents {
		if _, known := r.Overview.ContentsByCategory[c.Category]; known {
			r.Overview.ContentsByCategory[c.Category]++
		}
		switch c.Category.CostMetric() {
		case domain.CostPerFollower:
			growth = append(growth, c)
		case domain.CostPerEngagement:
			nurturing = append(nurturing, c)
		}
	}

	if len(growth) > 0 {
		m := &FollowerGrowthMetrics{
			TotalSpend: Sum(growth, func(c domain.Content) *float64 { return c.Spend }),
		}
		for _, c := range growth {
			if n, ok := c.FollowersGained(); ok {
				m.FollowersGained += n
			}
		}
		m.AvgCostPerFollower, m.BestCostPerFollower, m.WorstCostPerFollower = zeroFilled(
			Aggregate(growth, func(c domain.Content) *float64 { return c.CostPerFollower }))
		r.FollowerGrowth = m
	}

	if len(nurturing) > 0 {
		m := &EngagementMetrics{
			TotalSpend:      Sum(nurturing, func(c domain.Content) *float64 { return c.Spend }),
			TotalEngagement: sumInt(nurturing, func(c domain.Content) *int64 { return c.Engagement }),
		}
		m.AvgCostPerEngagement, m.BestCostPerEngagement, m.WorstCostPerEngagement = zeroFilled(
			Aggregate(nurturing, func(c domain.Content) *float64 { return c.CostPerEngagement }))
		r.Engagement = m
	}

	if len(campaigns) > 0 {
		m := &CampaignMetrics{
			TotalCampaigns:      len(campaigns),
			TotalSpend:          Sum(campaigns, func(c domain.Campaign) *float64 { return c.TotalSpend }),
			TotalEngagement:     sumInt(campaigns, func(c domain.Campaign) *int64 { return c.TotalEngagement }),
			TotalReach:          sumInt(campaigns, func(c domain.Campaign) *int64 { return c.TotalReach }),
			CampaignsByCategory: make(map[domain.Category]int, len(domain.CampaignCategories)),
		}
		for _, cat := range domain.CampaignCategories {
			m.CampaignsByCategory[cat] = 0
		}
		for _, c := range campaigns {
			if c.Category.IsCampaignCategory() {
				m.CampaignsByCategory[c.Category]++
			}
		}
		r.Campaigns = m
	}
	return r
}

func zeroFilled(s Summary, ok bool) (mean, best, worst float64) {
	if !ok {
		return 0, 0, 0
	}
	return s.Mean, s.Min, s.Max
}

func sumInt[T any](items []T, value func(T) *int64) int64 {
	var total int64
	for _, it := range items {
		if v := value(it); v != nil {
			total += *v
		}
	}
	return total
}

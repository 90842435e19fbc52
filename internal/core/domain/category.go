package domain

import (
	"fmt"
	"strings"
)

// Category classifies contents and campaigns. C1 is follower-growth
// creative; C2, C3 and C4 are engagement/nurture creatives. Campaigns only
// use C2..C4.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryC1
	CategoryC2
	CategoryC3
	CategoryC4
)

// Categories lists every content category in report order.
var Categories = []Category{CategoryC1, CategoryC2, CategoryC3, CategoryC4}

// CampaignCategories lists the categories a campaign may carry.
var CampaignCategories = []Category{CategoryC2, CategoryC3, CategoryC4}

// CostMetric names the efficiency metric that ranks and evaluates a record.
type CostMetric uint8

const (
	CostPerFollower CostMetric = iota + 1
	CostPerEngagement
)

func (m CostMetric) String() string {
	switch m {
	case CostPerFollower:
		return "cost_per_follower"
	case CostPerEngagement:
		return "cost_per_engagement"
	default:
		return "unknown"
	}
}

// ParseCategory parses "C1".."C4" (case-insensitive).
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C1":
		return CategoryC1, nil
	case "C2":
		return CategoryC2, nil
	case "C3":
		return CategoryC3, nil
	case "C4":
		return CategoryC4, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown category %q", s)
	}
}

func (c Category) String() string {
	switch c {
	case CategoryC1:
		return "C1"
	case CategoryC2:
		return "C2"
	case CategoryC3:
		return "C3"
	case CategoryC4:
		return "C4"
	default:
		return ""
	}
}

// CostMetric returns the authoritative cost metric for the category.
func (c Category) CostMetric() CostMetric {
	switch c {
	case CategoryC1:
		return CostPerFollower
	case CategoryC2, CategoryC3, CategoryC4:
		return CostPerEngagement
	default:
		return 0
	}
}

// IsCampaignCategory reports whether a campaign may be tagged with c.
func (c Category) IsCampaignCategory() bool {
	return c == CategoryC2 || c == CategoryC3 || c == CategoryC4
}

func (c Category) MarshalText() ([]byte, error) {
	if c == CategoryUnknown {
		return nil, fmt.Errorf("cannot marshal unknown category")
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

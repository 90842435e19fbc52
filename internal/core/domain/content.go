package domain

import (
	"time"

	"github.com/google/uuid"
)

// Content represents a boosted creative (post, reel, video) of a project.
// CostPerFollower and CostPerEngagement are derived by the store from spend
// and the respective outcome and are read-only here.
type Content struct {
	ID                uuid.UUID       `json:"id"`
	ProjectID         uuid.UUID       `json:"project_id"`
	Identifier        string          `json:"identifier"`
	Category          Category        `json:"category"`
	Reach             *int64          `json:"reach"`
	Engagement        *int64          `json:"engagement"`
	Spend             *float64        `json:"spend"`
	CPM               *float64        `json:"cpm"`
	FollowersBefore   *int64          `json:"followers_before"`
	FollowersAfter    *int64          `json:"followers_after"`
	CostPerFollower   *float64        `json:"cost_per_follower"`
	CostPerEngagement *float64        `json:"cost_per_engagement"`
	ThruPlay          *int64          `json:"thruplay"`
	Frequency         *float64        `json:"frequency"`
	Video             VideoCompletion `json:"video"`
	BoostStart        *time.Time      `json:"boost_start"`
	BoostEnd          *time.Time      `json:"boost_end"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Active            bool            `json:"active"`
}

// Cost returns the authoritative cost metric of the content given its
// category, or nil when it has not been measured.
func (c Content) Cost() *float64 {
	switch c.Category.CostMetric() {
	case CostPerFollower:
		return c.CostPerFollower
	case CostPerEngagement:
		return c.CostPerEngagement
	default:
		return nil
	}
}

// FollowersGained returns after-before when both counts are present.
func (c Content) FollowersGained() (int64, bool) {
	if c.FollowersBefore == nil || c.FollowersAfter == nil {
		return 0, false
	}
	return *c.FollowersAfter - *c.FollowersBefore, true
}

// ContentUpdate carries the fields to change. Nil fields are left untouched.
type ContentUpdate struct {
	Identifier      *string
	Category        *Category
	Reach           *int64
	Engagement      *int64
	Spend           *float64
	CPM             *float64
	FollowersBefore *int64
	FollowersAfter  *int64
	ThruPlay        *int64
	Frequency       *float64
	Video           VideoCompletion
	BoostStart      *time.Time
	BoostEnd        *time.Time
}

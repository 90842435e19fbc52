package domain

import (
	"time"

	"github.com/google/uuid"
)

// VideoCompletion counts views reaching each playback milestone.
type VideoCompletion struct {
	P25  *int64 `json:"p25"`
	P50  *int64 `json:"p50"`
	P75  *int64 `json:"p75"`
	P95  *int64 `json:"p95"`
	P100 *int64 `json:"p100"`
}

// Campaign represents a paid campaign of a project. Metric fields are nil
// until they have been measured.
type Campaign struct {
	ID                uuid.UUID       `json:"id"`
	ProjectID         uuid.UUID       `json:"project_id"`
	Name              string          `json:"name"`
	Category          Category        `json:"category"`
	Objective         *string         `json:"objective"`
	TotalEngagement   *int64          `json:"total_engagement"`
	CostPerEngagement *float64        `json:"cost_per_engagement"`
	TotalReach        *int64          `json:"total_reach"`
	ThruPlayTotal     *int64          `json:"thruplay_total"`
	AverageFrequency  *float64        `json:"average_frequency"`
	TotalSpend        *float64        `json:"total_spend"`
	Video             VideoCompletion `json:"video"`
	StartDate         *time.Time      `json:"start_date"`
	EndDate           *time.Time      `json:"end_date"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Active            bool            `json:"active"`
}

// CampaignUpdate carries the fields to change. Nil fields are left untouched.
type CampaignUpdate struct {
	Name              *string
	Category          *Category
	Objective         *string
	TotalEngagement   *int64
	CostPerEngagement *float64
	TotalReach        *int64
	ThruPlayTotal     *int64
	AverageFrequency  *float64
	TotalSpend        *float64
	Video             VideoCompletion
	StartDate         *time.Time
	EndDate           *time.Time
}

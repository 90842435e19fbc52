package analytics

import (
	"github.com/google/uuid"

	"control-ads/internal/core/domain"
)

func f(v float64) *float64 { return &v }
func n(v int64) *int64     { return &v }

func content(id string, cat domain.Category, cost *float64) domain.Content {
	c := domain.Content{ID: uuid.New(), Identifier: id, Category: cat, Active: true}
	if cat == domain.CategoryC1 {
		c.CostPerFollower = cost
	} else {
		c.CostPerEngagement = cost
	}
	return c
}

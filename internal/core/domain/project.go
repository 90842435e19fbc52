package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups the contents and campaigns of one advertiser account.
type Project struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Description            *string   `json:"description"`
	MonthlySpendProjection *float64  `json:"monthly_spend_projection"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
	Active                 bool      `json:"active"`
}

// ProjectUpdate carries the fields to change. Nil fields are left untouched.
type ProjectUpdate struct {
	Name                   *string
	Description            *string
	MonthlySpendProjection *float64
}

// Empty reports whether the update changes nothing.
func (u ProjectUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.MonthlySpendProjection == nil
}

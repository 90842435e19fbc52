package usecase

import (
	"github.com/google/uuid"

	"control-ads/internal/core/domain"
)

func f(v float64) *float64 { return &v }

func n(v int64) *int64 { return &v }

func project(id uuid.UUID) *domain.Project {
	return &domain.Project{ID: id, Name: "Demo", Active: true}
}

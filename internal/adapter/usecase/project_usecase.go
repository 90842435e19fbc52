package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
)

// ProjectUseCase manages projects.
type ProjectUseCase struct {
	repo port.ProjectRepository
}

var _ port.ProjectUseCase = (*ProjectUseCase)(nil)

// NewProjectUseCase creates a new usecase with the provided repository.
func NewProjectUseCase(repo port.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// CreateProject validates and stores a new project.
func (u *ProjectUseCase) CreateProject(ctx context.Context, req port.CreateProjectReq) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", port.ErrInvalidInput)
	}
	return u.repo.CreateProject(ctx, domain.Project{
		Name:                   name,
		Description:            req.Description,
		MonthlySpendProjection: req.MonthlySpendProjection,
	})
}

// GetProject returns a project or port.ErrNotFound.
func (u *ProjectUseCase) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	p, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: project %s", port.ErrNotFound, id)
	}
	return p, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return u.repo.ListProjects(ctx)
}

// UpdateProject applies a partial update. An empty update returns the
// current snapshot.
func (u *ProjectUseCase) UpdateProject(ctx context.Context, id uuid.UUID, upd domain.ProjectUpdate) (*domain.Project, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be blank", port.ErrInvalidInput)
		}
		upd.Name = &name
	}
	p, err := u.repo.UpdateProject(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: project %s", port.ErrNotFound, id)
	}
	return p, nil
}

// DeleteProject soft-deletes a project.
func (u *ProjectUseCase) DeleteProject(ctx context.Context, id uuid.UUID) error {
	ok, err := u.repo.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: project %s", port.ErrNotFound, id)
	}
	return nil
}

// requireProject fails with port.ErrNotFound unless the project exists.
func requireProject(ctx context.Context, repo port.ProjectRepository, id uuid.UUID) (*domain.Project, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: project_id is required", port.ErrInvalidInput)
	}
	p, err := repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: project %s", port.ErrNotFound, id)
	}
	return p, nil
}

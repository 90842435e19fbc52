package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
	"control-ads/internal/core/port/mocks"
)

func TestCreateProjectTrimsName(t *testing.T) {
	repo := mocks.NewMockProjectRepository(t)
	repo.EXPECT().
		CreateProject(mock.Anything, mock.MatchedBy(func(p domain.Project) bool { return p.Name == "Acme" })).
		RunAndReturn(func(_ context.Context, p domain.Project) (*domain.Project, error) {
			p.ID = uuid.New()
			p.Active = true
			return &p, nil
		})

	svc := NewProjectUseCase(repo)
	p, err := svc.CreateProject(context.Background(), port.CreateProjectReq{Name: "  Acme "})
	if err != nil {
		t.Fatalf("CreateProject error: %v", err)
	}
	if p.Name != "Acme" || !p.Active {
		t.Fatalf("unexpected project: %+v", p)
	}
}

func TestCreateProjectRequiresName(t *testing.T) {
	svc := NewProjectUseCase(mocks.NewMockProjectRepository(t))
	_, err := svc.CreateProject(context.Background(), port.CreateProjectReq{Name: "   "})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestGetProjectNotFound(t *testing.T) {
	repo := mocks.NewMockProjectRepository(t)
	id := uuid.New()
	repo.EXPECT().GetProject(mock.Anything, id).Return(nil, nil)

	_, err := NewProjectUseCase(repo).GetProject(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestGetProjectPropagatesStoreFailure(t *testing.T) {
	repo := mocks.NewMockProjectRepository(t)
	id := uuid.New()
	boom := errors.New("connection refused")
	repo.EXPECT().GetProject(mock.Anything, id).Return(nil, boom)

	_, err := NewProjectUseCase(repo).GetProject(context.Background(), id)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, port.ErrNotFound)
}

func TestUpdateProjectRejectsBlankName(t *testing.T) {
	svc := NewProjectUseCase(mocks.NewMockProjectRepository(t))
	blank := " "
	_, err := svc.UpdateProject(context.Background(), uuid.New(), domain.ProjectUpdate{Name: &blank})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestUpdateProjectMissing(t *testing.T) {
	repo := mocks.NewMockProjectRepository(t)
	id := uuid.New()
	spend := 500.0
	upd := domain.ProjectUpdate{MonthlySpendProjection: &spend}
	repo.EXPECT().UpdateProject(mock.Anything, id, upd).Return(nil, nil)

	_, err := NewProjectUseCase(repo).UpdateProject(context.Background(), id, upd)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	repo := mocks.NewMockProjectRepository(t)
	id := uuid.New()
	repo.EXPECT().DeleteProject(mock.Anything, id).Return(true, nil).Once()
	repo.EXPECT().DeleteProject(mock.Anything, id).Return(false, nil).Once()

	svc := NewProjectUseCase(repo)
	require.NoError(t, svc.DeleteProject(context.Background(), id))
	assert.ErrorIs(t, svc.DeleteProject(context.Background(), id), port.ErrNotFound)
}

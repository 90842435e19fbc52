package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"control-ads/internal/core/analytics"
	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
)

// ContentUseCase manages contents and builds the creative leaderboard.
type ContentUseCase struct {
	projects port.ProjectRepository
	contents port.ContentRepository
}

var _ port.ContentUseCase = (*ContentUseCase)(nil)

// NewContentUseCase creates a new usecase with the provided repositories.
func NewContentUseCase(projects port.ProjectRepository, contents port.ContentRepository) *ContentUseCase {
	return &ContentUseCase{projects: projects, contents: contents}
}

// CreateContent stores a content of an existing project.
func (u *ContentUseCase) CreateContent(ctx context.Context, c domain.Content) (*domain.Content, error) {
	c.Identifier = strings.TrimSpace(c.Identifier)
	if c.Identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", port.ErrInvalidInput)
	}
	if err := validBoost(c.BoostStart, c.BoostEnd); err != nil {
		return nil, err
	}
	if _, err := requireProject(ctx, u.projects, c.ProjectID); err != nil {
		return nil, err
	}
	return u.contents.CreateContent(ctx, c)
}

// GetContent returns a content or port.ErrNotFound.
func (u *ContentUseCase) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	c, err := u.contents.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: content %s", port.ErrNotFound, id)
	}
	return c, nil
}

func (u *ContentUseCase) ListContents(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Content, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project_id is required", port.ErrInvalidInput)
	}
	return u.contents.ListContents(ctx, projectID, category)
}

func (u *ContentUseCase) UpdateContent(ctx context.Context, id uuid.UUID, upd domain.ContentUpdate) (*domain.Content, error) {
	if upd.Identifier != nil {
		ident := strings.TrimSpace(*upd.Identifier)
		if ident == "" {
			return nil, fmt.Errorf("%w: identifier must not be blank", port.ErrInvalidInput)
		}
		upd.Identifier = &ident
	}
	if err := validBoost(upd.BoostStart, upd.BoostEnd); err != nil {
		return nil, err
	}
	c, err := u.contents.UpdateContent(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: content %s", port.ErrNotFound, id)
	}
	return c, nil
}

func (u *ContentUseCase) DeleteContent(ctx context.Context, id uuid.UUID) error {
	ok, err := u.contents.DeleteContent(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: content %s", port.ErrNotFound, id)
	}
	return nil
}

// BestCreatives ranks the contents boosted within the requested window.
// Every category is present in the result, possibly with an empty list.
func (u *ContentUseCase) BestCreatives(ctx context.Context, req port.BestCreativesReq) (map[domain.Category][]domain.Content, error) {
	if err := validBoost(req.From, req.To); err != nil {
		return nil, err
	}
	contents, err := u.contents.ListBoostedContents(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}
	return analytics.BestCreatives(contents), nil
}

func validBoost(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: boost end precedes boost start", port.ErrInvalidInput)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
	"control-ads/internal/db"
)

const projectColumns = `id, name, description, monthly_spend_projection, created_at, updated_at, active`

// ProjectRepository implements port.ProjectRepository using pgxpool.
type ProjectRepository struct {
	pool    *pgxpool.Pool
	breaker *db.Breaker
}

var _ port.ProjectRepository = (*ProjectRepository)(nil)

// NewProjectRepository returns a new repository instance.
func NewProjectRepository(pool *pgxpool.Pool, breaker *db.Breaker) *ProjectRepository {
	return &ProjectRepository{pool: pool, breaker: breaker}
}

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.MonthlySpendProjection, &p.CreatedAt, &p.UpdatedAt, &p.Active)
	return p, err
}

// CreateProject inserts a project.
func (r *ProjectRepository) CreateProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	return db.Execute(r.breaker, func() (*domain.Project, error) {
		created, err := scanProject(r.pool.QueryRow(ctx,
			`INSERT INTO projects (name, description, monthly_spend_projection) VALUES ($1,$2,$3) RETURNING `+projectColumns,
			p.Name, p.Description, p.MonthlySpendProjection))
		if err != nil {
			return nil, err
		}
		return &created, nil
	})
}

// GetProject returns an active project by id.
func (r *ProjectRepository) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return db.Execute(r.breaker, func() (*domain.Project, error) {
		p, err := scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 AND active`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// ListProjects returns all active projects, newest first.
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return db.Execute(r.breaker, func() ([]domain.Project, error) {
		rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects WHERE active ORDER BY created_at DESC`)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
			return scanProject(row)
		})
	})
}

// UpdateProject applies upd and returns the stored snapshot.
func (r *ProjectRepository) UpdateProject(ctx context.Context, id uuid.UUID, upd domain.ProjectUpdate) (*domain.Project, error) {
	var set setClause
	setIf(&set, "name", upd.Name)
	setIf(&set, "description", upd.Description)
	setIf(&set, "monthly_spend_projection", upd.MonthlySpendProjection)
	if set.empty() {
		return r.GetProject(ctx, id)
	}
	query, args := set.update("projects", id, projectColumns)
	return db.Execute(r.breaker, func() (*domain.Project, error) {
		p, err := scanProject(r.pool.QueryRow(ctx, query, args...))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// DeleteProject soft-deletes a project.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) (bool, error) {
	return softDelete(ctx, r.pool, r.breaker, "projects", id)
}

func softDelete(ctx context.Context, pool *pgxpool.Pool, breaker *db.Breaker, table string, id uuid.UUID) (bool, error) {
	return db.Execute(breaker, func() (bool, error) {
		tag, err := pool.Exec(ctx, `UPDATE `+table+` SET active = false, updated_at = now() WHERE id = $1 AND active`, id)
		if err != nil {
			return false, err
		}
		return tag.RowsAffected() > 0, nil
	})
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"control-ads/internal/core/domain"
	"control-ads/internal/core/port"
	"control-ads/internal/db"
)

const contentColumns = `id, project_id, identifier, category, reach, engagement, spend, cpm,
	followers_before, followers_after, cost_per_follower, cost_per_engagement, thruplay, frequency,
	video_p25, video_p50, video_p75, video_p95, video_p100, boost_start, boost_end,
	created_at, updated_at, active`

// ContentRepository implements port.ContentRepository using pgxpool.
type ContentRepository struct {
	pool    *pgxpool.Pool
	breaker *db.Breaker
}

var _ port.ContentRepository = (*ContentRepository)(nil)

// NewContentRepository returns a new repository instance.
func NewContentRepository(pool *pgxpool.Pool, breaker *db.Breaker) *ContentRepository {
	return &ContentRepository{pool: pool, breaker: breaker}
}

func scanContent(row pgx.Row) (domain.Content, error) {
	var (
		c        domain.Content
		category string
	)
	err := row.Scan(
		&c.ID,
		&c.ProjectID,
		&c.Identifier,
		&category,
		&c.Reach,
		&c.Engagement,
		&c.Spend,
		&c.CPM,
		&c.FollowersBefore,
		&c.FollowersAfter,
		&c.CostPerFollower,
		&c.CostPerEngagement,
		&c.ThruPlay,
		&c.Frequency,
		&c.Video.P25,
		&c.Video.P50,
		&c.Video.P75,
		&c.Video.P95,
		&c.Video.P100,
		&c.BoostStart,
		&c.BoostEnd,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Active,
	)
	if err != nil {
		return c, err
	}
	c.Category, err = domain.ParseCategory(category)
	return c, err
}

func collectContents(rows pgx.Rows) ([]domain.Content, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Content, error) {
		return scanContent(row)
	})
}

func contentOrNil(c domain.Content, err error) (*domain.Content, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateContent inserts a content. Derived costs are computed by the
// database and returned with the snapshot.
func (r *ContentRepository) CreateContent(ctx context.Context, c domain.Content) (*domain.Content, error) {
	return db.Execute(r.breaker, func() (*domain.Content, error) {
		created, err := scanContent(r.pool.QueryRow(ctx, `INSERT INTO contents
    (project_id, identifier, category, reach, engagement, spend, cpm, followers_before, followers_after,
     thruplay, frequency, video_p25, video_p50, video_p75, video_p95, video_p100, boost_start, boost_end)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
RETURNING `+contentColumns,
			c.ProjectID, c.Identifier, c.Category.String(), c.Reach, c.Engagement, c.Spend, c.CPM,
			c.FollowersBefore, c.FollowersAfter, c.ThruPlay, c.Frequency,
			c.Video.P25, c.Video.P50, c.Video.P75, c.Video.P95, c.Video.P100, c.BoostStart, c.BoostEnd))
		if err != nil {
			return nil, err
		}
		return &created, nil
	})
}

// GetContent returns an active content by id.
func (r *ContentRepository) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	return db.Execute(r.breaker, func() (*domain.Content, error) {
		return contentOrNil(scanContent(r.pool.QueryRow(ctx,
			`SELECT `+contentColumns+` FROM contents WHERE id = $1 AND active`, id)))
	})
}

// ListContents returns the active contents of a project, newest first.
func (r *ContentRepository) ListContents(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE project_id = $1 AND active`
	args := []any{projectID}
	if category != nil {
		query += ` AND category = $2`
		args = append(args, category.String())
	}
	query += ` ORDER BY created_at DESC`
	return db.Execute(r.breaker, func() ([]domain.Content, error) {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		return collectContents(rows)
	})
}

// UpdateContent applies upd and returns the stored snapshot.
func (r *ContentRepository) UpdateContent(ctx context.Context, id uuid.UUID, upd domain.ContentUpdate) (*domain.Content, error) {
	var set setClause
	setIf(&set, "identifier", upd.Identifier)
	if upd.Category != nil {
		set.add("category", upd.Category.String())
	}
	setIf(&set, "reach", upd.Reach)
	setIf(&set, "engagement", upd.Engagement)
	setIf(&set, "spend", upd.Spend)
	setIf(&set, "cpm", upd.CPM)
	setIf(&set, "followers_before", upd.FollowersBefore)
	setIf(&set, "followers_after", upd.FollowersAfter)
	setIf(&set, "thruplay", upd.ThruPlay)
	setIf(&set, "frequency", upd.Frequency)
	setVideo(&set, upd.Video)
	setIf(&set, "boost_start", upd.BoostStart)
	setIf(&set, "boost_end", upd.BoostEnd)
	if set.empty() {
		return r.GetContent(ctx, id)
	}
	query, args := set.update("contents", id, contentColumns)
	return db.Execute(r.breaker, func() (*domain.Content, error) {
		return contentOrNil(scanContent(r.pool.QueryRow(ctx, query, args...)))
	})
}

// DeleteContent soft-deletes a content.
func (r *ContentRepository) DeleteContent(ctx context.Context, id uuid.UUID) (bool, error) {
	return softDelete(ctx, r.pool, r.breaker, "contents", id)
}

// ListBoostedContents returns active contents of every project boosted
// within [from, to].
func (r *ContentRepository) ListBoostedContents(ctx context.Context, from, to *time.Time) ([]domain.Content, error) {
	return db.Execute(r.breaker, func() ([]domain.Content, error) {
		rows, err := r.pool.Query(ctx, `SELECT `+contentColumns+` FROM contents
WHERE active
  AND ($1::date IS NULL OR boost_start >= $1::date)
  AND ($2::date IS NULL OR boost_end <= $2::date)
ORDER BY created_at DESC`, from, to)
		if err != nil {
			return nil, err
		}
		return collectContents(rows)
	})
}

func setVideo(set *setClause, v domain.VideoCompletion) {
	setIf(set, "video_p25", v.P25)
	setIf(set, "video_p50", v.P50)
	setIf(set, "video_p75", v.P75)
	setIf(set, "video_p95", v.P95)
	setIf(set, "video_p100", v.P100)
}

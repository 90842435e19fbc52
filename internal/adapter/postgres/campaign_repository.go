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

const campaignColumns = `id, project_id, name, category, objective, total_engagement, cost_per_engagement,
	total_reach, thruplay_total, average_frequency, total_spend,
	video_p25, video_p50, video_p75, video_p95, video_p100, start_date, end_date,
	created_at, updated_at, active`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool    *pgxpool.Pool
	breaker *db.Breaker
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool, breaker *db.Breaker) *CampaignRepository {
	return &CampaignRepository{pool: pool, breaker: breaker}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		category string
	)
	err := row.Scan(
		&c.ID,
		&c.ProjectID,
		&c.Name,
		&category,
		&c.Objective,
		&c.TotalEngagement,
		&c.CostPerEngagement,
		&c.TotalReach,
		&c.ThruPlayTotal,
		&c.AverageFrequency,
		&c.TotalSpend,
		&c.Video.P25,
		&c.Video.P50,
		&c.Video.P75,
		&c.Video.P95,
		&c.Video.P100,
		&c.StartDate,
		&c.EndDate,
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

func campaignOrNil(c domain.Campaign, err error) (*domain.Campaign, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts a campaign.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	return db.Execute(r.breaker, func() (*domain.Campaign, error) {
		created, err := scanCampaign(r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (project_id, name, category, objective, total_engagement, cost_per_engagement, total_reach,
     thruplay_total, average_frequency, total_spend, video_p25, video_p50, video_p75, video_p95,
     video_p100, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
RETURNING `+campaignColumns,
			c.ProjectID, c.Name, c.Category.String(), c.Objective, c.TotalEngagement, c.CostPerEngagement,
			c.TotalReach, c.ThruPlayTotal, c.AverageFrequency, c.TotalSpend,
			c.Video.P25, c.Video.P50, c.Video.P75, c.Video.P95, c.Video.P100, c.StartDate, c.EndDate))
		if err != nil {
			return nil, err
		}
		return &created, nil
	})
}

// GetCampaign returns an active campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return db.Execute(r.breaker, func() (*domain.Campaign, error) {
		return campaignOrNil(scanCampaign(r.pool.QueryRow(ctx,
			`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND active`, id)))
	})
}

// ListCampaigns returns the active campaigns of a project, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, projectID uuid.UUID, category *domain.Category) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE project_id = $1 AND active`
	args := []any{projectID}
	if category != nil {
		query += ` AND category = $2`
		args = append(args, category.String())
	}
	query += ` ORDER BY created_at DESC`
	return db.Execute(r.breaker, func() ([]domain.Campaign, error) {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
			return scanCampaign(row)
		})
	})
}

// UpdateCampaign applies upd and returns the stored snapshot.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, id uuid.UUID, upd domain.CampaignUpdate) (*domain.Campaign, error) {
	var set setClause
	setIf(&set, "name", upd.Name)
	if upd.Category != nil {
		set.add("category", upd.Category.String())
	}
	setIf(&set, "objective", upd.Objective)
	setIf(&set, "total_engagement", upd.TotalEngagement)
	setIf(&set, "cost_per_engagement", upd.CostPerEngagement)
	setIf(&set, "total_reach", upd.TotalReach)
	setIf(&set, "thruplay_total", upd.ThruPlayTotal)
	setIf(&set, "average_frequency", upd.AverageFrequency)
	setIf(&set, "total_spend", upd.TotalSpend)
	setVideo(&set, upd.Video)
	setIf(&set, "start_date", upd.StartDate)
	setIf(&set, "end_date", upd.EndDate)
	if set.empty() {
		return r.GetCampaign(ctx, id)
	}
	query, args := set.update("campaigns", id, campaignColumns)
	return db.Execute(r.breaker, func() (*domain.Campaign, error) {
		return campaignOrNil(scanCampaign(r.pool.QueryRow(ctx, query, args...)))
	})
}

// DeleteCampaign soft-deletes a campaign.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) (bool, error) {
	return softDelete(ctx, r.pool, r.breaker, "campaigns", id)
}

// AttachContent associates a content with a campaign.
func (r *CampaignRepository) AttachContent(ctx context.Context, campaignID, contentID uuid.UUID) error {
	_, err := db.Execute(r.breaker, func() (struct{}, error) {
		_, err := r.pool.Exec(ctx, `INSERT INTO campaign_contents (campaign_id, content_id)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, campaignID, contentID)
		return struct{}{}, err
	})
	return err
}

// DetachContent removes an association.
func (r *CampaignRepository) DetachContent(ctx context.Context, campaignID, contentID uuid.UUID) (bool, error) {
	return db.Execute(r.breaker, func() (bool, error) {
		tag, err := r.pool.Exec(ctx, `DELETE FROM campaign_contents WHERE campaign_id = $1 AND content_id = $2`,
			campaignID, contentID)
		if err != nil {
			return false, err
		}
		return tag.RowsAffected() > 0, nil
	})
}

// ListCampaignContents returns the active contents attached to a campaign
// in attachment order.
func (r *CampaignRepository) ListCampaignContents(ctx context.Context, campaignID uuid.UUID) ([]domain.Content, error) {
	return db.Execute(r.breaker, func() ([]domain.Content, error) {
		rows, err := r.pool.Query(ctx, `SELECT `+qualify("c", contentColumns)+`
FROM campaign_contents cc
JOIN contents c ON c.id = cc.content_id
WHERE cc.campaign_id = $1 AND c.active
ORDER BY cc.created_at`, campaignID)
		if err != nil {
			return nil, err
		}
		return collectContents(rows)
	})
}

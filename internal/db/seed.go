package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a demo project with contents and campaigns. It does nothing
// when an active project already exists.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	var exists bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE active)`).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var projectID uuid.UUID
	err := db.QueryRow(ctx, `INSERT INTO projects (name, description, monthly_spend_projection)
VALUES ($1, $2, $3) RETURNING id`,
		"Demo project", "Seeded demo data", 5000.0).Scan(&projectID)
	if err != nil {
		return err
	}

	// contents: three per category with random metrics
	contentIDs := make([]uuid.UUID, 0, 12)
	for i, category := range []string{"C1", "C2", "C3", "C4"} {
		for j := 1; j <= 3; j++ {
			identifier := fmt.Sprintf("%s-post-%02d", category, i*3+j)
			spend := float64(50 + r.Intn(450))
			reach := int64(1000 + r.Intn(20000))
			engagement := int64(50 + r.Intn(2000))
			before := int64(10000 + r.Intn(5000))
			after := before + int64(r.Intn(400))
			p25 := int64(500 + r.Intn(5000))
			p100 := p25 * int64(5+r.Intn(60)) / 100
			start := time.Now().AddDate(0, 0, -30+r.Intn(10))
			end := start.AddDate(0, 0, 7+r.Intn(14))
			var id uuid.UUID
			err = db.QueryRow(ctx, `INSERT INTO contents
    (project_id, identifier, category, reach, engagement, spend, cpm, followers_before, followers_after,
     video_p25, video_p100, boost_start, boost_end)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id`,
				projectID, identifier, category, reach, engagement, spend, spend/float64(reach)*1000,
				before, after, p25, p100, start, end).Scan(&id)
			if err != nil {
				return err
			}
			contentIDs = append(contentIDs, id)
		}
	}

	// campaigns, each attached to the contents of its category
	for i, category := range []string{"C2", "C3", "C4"} {
		engagement := int64(500 + r.Intn(5000))
		spend := float64(200 + r.Intn(2000))
		reach := int64(5000 + r.Intn(50000))
		var id uuid.UUID
		err = db.QueryRow(ctx, `INSERT INTO campaigns
    (project_id, name, category, objective, total_engagement, cost_per_engagement, total_reach,
     thruplay_total, average_frequency, total_spend)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
			projectID, fmt.Sprintf("Campaign %s", category), category, "engagement",
			engagement, spend/float64(engagement), reach, reach*int64(5+r.Intn(30))/100,
			1+r.Float64()*3, spend).Scan(&id)
		if err != nil {
			return err
		}
		for _, contentID := range contentIDs[(i+1)*3 : (i+2)*3] {
			_, err = db.Exec(ctx, `INSERT INTO campaign_contents (campaign_id, content_id)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, contentID)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

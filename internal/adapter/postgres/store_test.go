package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"control-ads/internal/core/domain"
)

func TestSetClauseUpdate(t *testing.T) {
	name := "renamed"
	spend := 12.5
	var set setClause
	setIf(&set, "name", &name)
	setIf[string](&set, "description", nil)
	setIf(&set, "monthly_spend_projection", &spend)

	id := uuid.New()
	query, args := set.update("projects", id, "id, name")

	assert.Equal(t,
		"UPDATE projects SET name = $1, monthly_spend_projection = $2, updated_at = now() WHERE id = $3 AND active RETURNING id, name",
		query)
	assert.Equal(t, []any{"renamed", 12.5, id}, args)
}

func TestSetVideoSkipsNil(t *testing.T) {
	p25, p100 := int64(100), int64(20)
	var set setClause
	setVideo(&set, domain.VideoCompletion{P25: &p25, P100: &p100})
	assert.Equal(t, []string{"video_p25 = $1", "video_p100 = $2"}, set.sets)

	var empty setClause
	setVideo(&empty, domain.VideoCompletion{})
	assert.True(t, empty.empty())
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "c.id, c.name, c.active", qualify("c", "id, name,\n\tactive"))
}

package migrations

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryVersionHasUpAndDown(t *testing.T) {
	for v := 1; v <= Version; v++ {
		up, err := fs.Glob(FS, fmt.Sprintf("%06d_*.up.sql", v))
		require.NoError(t, err)
		down, err := fs.Glob(FS, fmt.Sprintf("%06d_*.down.sql", v))
		require.NoError(t, err)
		assert.Len(t, up, 1, "version %d up", v)
		assert.Len(t, down, 1, "version %d down", v)
	}
}

func TestDerivedCostsAreGenerated(t *testing.T) {
	b, err := fs.ReadFile(FS, "000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "cost_per_follower   double precision GENERATED ALWAYS")
	assert.Contains(t, string(b), "cost_per_engagement double precision GENERATED ALWAYS")
}

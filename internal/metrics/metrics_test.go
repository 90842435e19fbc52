package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"control-ads/internal/core/domain"
)

func TestObserveSuggestions(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSuggestions([]domain.Suggestion{
		{Category: "Ad Frequency", Priority: domain.PriorityHigh},
		{Category: "Ad Frequency", Priority: domain.PriorityHigh},
		{Category: "Video Retention", Priority: domain.PriorityMedium},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Suggestions.WithLabelValues("Ad Frequency", "high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Suggestions.WithLabelValues("Video Retention", "medium")))
}

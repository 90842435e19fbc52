// Package analytics turns raw content and campaign metrics into rankings,
// consolidated reports and rule-based optimisation suggestions. Everything
// here is a pure function of its inputs.
package analytics

import "math"

// Summary holds statistics over the records where a metric was present.
type Summary struct {
	Sum   float64 `json:"sum"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Aggregate computes a Summary over the non-nil values returned by value.
// The boolean is false when no record carried the metric; the Summary is
// meaningless in that case.
func Aggregate[T any](items []T, value func(T) *float64) (Summary, bool) {
	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, it := range items {
		v := value(it)
		if v == nil {
			continue
		}
		s.Sum += *v
		s.Count++
		s.Min = math.Min(s.Min, *v)
		s.Max = math.Max(s.Max, *v)
	}
	if s.Count == 0 {
		return Summary{}, false
	}
	s.Mean = s.Sum / float64(s.Count)
	return s, true
}

// Sum adds the non-nil values, reporting 0 when there are none.
func Sum[T any](items []T, value func(T) *float64) float64 {
	s, _ := Aggregate(items, value)
	return s.Sum
}


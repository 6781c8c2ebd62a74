package metrics

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/HerbHall/olympushub/pkg/models"
)

// trendShape returns the bucket count and label unit for a window.
func trendShape(tr models.TimeRange) (length int, unit string) {
	switch tr {
	case models.Last1H:
		return 60, "Min"
	case models.Last24H:
		return 24, "Hour"
	case models.Last7D:
		return 7, "Day"
	}
	return 30, "Day"
}

// Trend returns a current-vs-previous series for the named metric. Only the
// envelope depends on the selection; the shape comes from the Source.
func (e *Engine) Trend(name string, sel models.Selection) []models.TrendPoint {
	e.observe("trend")
	return e.trend(sel)
}

func (e *Engine) trend(sel models.Selection) []models.TrendPoint {
	ff, _ := factors(sel)
	length, unit := trendShape(sel.TimeRange)
	pts := make([]models.TrendPoint, length)
	for i := range pts {
		n := float64(i + 1)
		pts[i] = models.TrendPoint{
			Name:          fmt.Sprintf("%s %d", unit, length-i),
			Value:         math.Floor(e.src.Float64()*n*100+500) * ff,
			PreviousValue: math.Floor(e.src.Float64()*n*80+400) * ff * 0.8,
		}
	}
	return pts
}

// TopFailureReasons returns the failure breakdown scaled by the selection,
// largest first.
func (e *Engine) TopFailureReasons(sel models.Selection) []models.FailureReason {
	e.observe("failure_reasons")
	return e.failureReasons(sel)
}

func (e *Engine) failureReasons(sel models.Selection) []models.FailureReason {
	ff, _ := factors(sel)
	reasons := e.cat.FailureReasons()
	for i := range reasons {
		reasons[i].Count = roundInt(float64(reasons[i].Count) * ff)
	}
	slices.SortStableFunc(reasons, func(a, b models.FailureReason) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return reasons
}

// LatencyDistribution returns the latency histogram scaled by the selection.
func (e *Engine) LatencyDistribution(sel models.Selection) []models.LatencyBucket {
	e.observe("latency_distribution")
	ff, _ := factors(sel)
	buckets := e.cat.LatencyBuckets()
	for i := range buckets {
		buckets[i].Count = roundInt(float64(buckets[i].Count) * ff)
	}
	return buckets
}

// FeatureAdoption returns per-feature adoption clamped to [10, 100], highest
// first.
func (e *Engine) FeatureAdoption(sel models.Selection) []models.FeatureAdoption {
	e.observe("feature_adoption")
	ff, tf := factors(sel)
	features := e.cat.Features()
	for i := range features {
		features[i].Adoption = max(10, min(100, roundInt(float64(features[i].Adoption)*ff)))
		features[i].Change = (e.src.Float64() - 0.4) * 5 * tf * 30
	}
	slices.SortStableFunc(features, func(a, b models.FeatureAdoption) int {
		return cmp.Compare(b.Adoption, a.Adoption)
	})
	return features
}

// Package metrics derives synthetic dashboard metrics from a selection of
// subscribers, zones and a time range.
//
// Headline values, change strings and statuses are a pure function of the
// selection. Chart shapes (sparklines, trends, shuffles, supplementary
// series) draw from an injected Source so tests can pin them with a seed.
package metrics

import (
	"math"
	"unicode/utf16"

	"github.com/HerbHall/olympushub/pkg/models"
)

// MinDivisor is the smallest value a filter factor is divided by.
const MinDivisor = 0.1

// FilterFactor maps a selection to a reproducible scale in [0.2, 0.8], or
// exactly 1 when both sides select everything. The result does not depend
// on the order of either list.
func FilterFactor(subscribers []models.Subscriber, zones []models.Zone) float64 {
	allSubs := models.IsAllSubscribers(subscribers)
	allZones := models.IsAllZones(zones)
	if allSubs && allZones {
		return 1
	}

	seed := 0
	if !allSubs {
		for _, s := range subscribers {
			seed += codeUnitSum(s.ID)
		}
	}
	if !allZones {
		for _, z := range zones {
			seed += codeUnitSum(z.ID)
		}
	}
	return 0.2 + sinFraction(float64(seed))*0.6
}

// TimeRangeFactor is the fraction of a 30-day baseline the window covers.
// Unknown ranges count as the full baseline.
func TimeRangeFactor(tr models.TimeRange) float64 {
	switch tr {
	case models.Last1H:
		return 1.0 / 720
	case models.Last24H:
		return 1.0 / 30
	case models.Last7D:
		return 7.0 / 30
	case models.Last30D:
		return 1
	}
	return 1
}

// SafeDivisor guards every division by a filter factor. Factors below
// MinDivisor, zero and NaN all become MinDivisor.
func SafeDivisor(f float64) float64 {
	if !(f >= MinDivisor) {
		return MinDivisor
	}
	return f
}

// codeUnitSum sums the UTF-16 code units of s.
func codeUnitSum(s string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(s)) {
		sum += int(u)
	}
	return sum
}

// sinFraction is the fractional part of sin(x)*10000.
func sinFraction(x float64) float64 {
	v := math.Sin(x) * 10000
	return v - math.Floor(v)
}

// sinSequence is a deterministic generator seeded by an id. Each call
// advances the seed by one.
type sinSequence struct {
	seed int
}

func newSinSequence(id string) *sinSequence {
	return &sinSequence{seed: codeUnitSum(id)}
}

func (s *sinSequence) next() float64 {
	v := sinFraction(float64(s.seed))
	s.seed++
	return v
}

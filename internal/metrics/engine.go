package metrics

import (
	"math"
	"strconv"
	"time"

	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
)

var derivationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "olympushub_derivations_total",
		Help: "Total number of metric derivations served, by generator.",
	},
	[]string{"generator"},
)

func init() {
	prometheus.MustRegister(derivationsTotal)
}

// Engine derives dashboard metrics from the reference catalog. It is safe
// for concurrent use.
type Engine struct {
	cat *catalog.Catalog
	src Source
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the randomness behind chart shapes.
func WithSource(src Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithClock sets the clock used for time labels.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine over cat. Without options it uses a
// time-seeded Source and the wall clock.
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{cat: cat, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewSource()
	}
	return e
}

// Catalog returns the reference data the engine reads.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

func (e *Engine) observe(generator string) {
	derivationsTotal.WithLabelValues(generator).Inc()
}

// factors returns the filter factor and the time range factor of sel.
func factors(sel models.Selection) (ff, tf float64) {
	return FilterFactor(sel.Subscribers, sel.Zones), TimeRangeFactor(sel.TimeRange)
}

// sparkline is 12 points t0..t11 valued floor(rand*max)+20.
func (e *Engine) sparkline(max float64) []models.Point {
	pts := make([]models.Point, 12)
	for i := range pts {
		pts[i] = models.Point{
			Name:  "t" + strconv.Itoa(i),
			Value: float64(int(e.src.Float64()*max)) + 20,
		}
	}
	return pts
}

// volumeStatus rates a count that scales with the selection.
func volumeStatus(ff float64) models.Status {
	if ff > 0.9 {
		return models.StatusGreen
	}
	return models.StatusAmber
}

// ceilingStatus rates a value where lower is better.
func ceilingStatus(v, amber, red float64) models.Status {
	switch {
	case v > red:
		return models.StatusRed
	case v > amber:
		return models.StatusAmber
	}
	return models.StatusGreen
}

// floorStatus rates a value where higher is better.
func floorStatus(v, green, amber float64) models.Status {
	switch {
	case v >= green:
		return models.StatusGreen
	case v >= amber:
		return models.StatusAmber
	}
	return models.StatusRed
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

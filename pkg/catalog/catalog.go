package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/HerbHall/olympushub/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Catalog is read-only after construction and safe for concurrent use.
// Slice accessors return copies.
type Catalog struct {
	doc         document
	subByID     map[string]models.Subscriber
	zoneByID    map[string]models.Zone
	metricsByID map[string]models.SubscriberMetric
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog compiled into the binary. It panics if the
// embedded data is invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{
		doc:         doc,
		subByID:     make(map[string]models.Subscriber, len(doc.Subscribers)),
		zoneByID:    make(map[string]models.Zone, len(doc.Zones)),
		metricsByID: make(map[string]models.SubscriberMetric, len(doc.SubscriberMetrics)),
	}
	for _, z := range doc.Zones {
		c.zoneByID[z.ID] = z
	}
	for _, s := range doc.Subscribers {
		c.subByID[s.ID] = s
	}
	for _, m := range doc.SubscriberMetrics {
		c.metricsByID[m.SubscriberID] = m
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	if _, ok := c.subByID[models.AllID]; !ok {
		errs = append(errs, errors.New("subscribers: missing \"all\" sentinel"))
	}
	if _, ok := c.zoneByID[models.AllID]; !ok {
		errs = append(errs, errors.New("zones: missing \"all\" sentinel"))
	}
	for _, s := range c.doc.Subscribers {
		if _, ok := c.zoneByID[s.ZoneID]; !ok {
			errs = append(errs, fmt.Errorf("subscriber %q: unknown zone %q", s.ID, s.ZoneID))
		}
	}
	for _, m := range c.doc.SubscriberMetrics {
		if _, ok := c.subByID[m.SubscriberID]; !ok {
			errs = append(errs, fmt.Errorf("subscriber_metrics: unknown subscriber %q", m.SubscriberID))
		}
	}
	for _, r := range c.doc.JobRuns {
		if !r.Status.Valid() {
			errs = append(errs, fmt.Errorf("job run %q: invalid status %q", r.ID, r.Status))
		}
	}
	for _, r := range c.doc.AlertRules {
		if !c.IsAlertable(r.MetricID) {
			errs = append(errs, fmt.Errorf("alert rule %q: unknown metric %q", r.ID, r.MetricID))
		}
	}
	for name, ts := range c.doc.TSheets {
		if _, ok := ts.Columns[TillDateColumn]; !ok {
			errs = append(errs, fmt.Errorf("tsheet %q: missing %s column", name, TillDateColumn))
		}
	}
	return errors.Join(errs...)
}

// Zones returns every zone, sentinel first.
func (c *Catalog) Zones() []models.Zone { return slices.Clone(c.doc.Zones) }

// Subscribers returns every subscriber, sentinel first.
func (c *Catalog) Subscribers() []models.Subscriber { return slices.Clone(c.doc.Subscribers) }

// Subscriber looks up a subscriber by id.
func (c *Catalog) Subscriber(id string) (models.Subscriber, bool) {
	s, ok := c.subByID[id]
	return s, ok
}

// Zone looks up a zone by id.
func (c *Catalog) Zone(id string) (models.Zone, bool) {
	z, ok := c.zoneByID[id]
	return z, ok
}

// SubscriberByName looks up a subscriber by display name.
func (c *Catalog) SubscriberByName(name string) (models.Subscriber, bool) {
	for _, s := range c.doc.Subscribers {
		if s.Name == name {
			return s, true
		}
	}
	return models.Subscriber{}, false
}

// SubscribersInZones returns the concrete subscribers hosted in any of zoneIDs.
func (c *Catalog) SubscribersInZones(zoneIDs []string) []models.Subscriber {
	var out []models.Subscriber
	for _, s := range c.doc.Subscribers {
		if s.ID != models.AllID && slices.Contains(zoneIDs, s.ZoneID) {
			out = append(out, s)
		}
	}
	return out
}

// Selection resolves ids into a selection. Unknown ids are dropped and an
// empty side falls back to the sentinel. An unknown range falls back to def.
func (c *Catalog) Selection(subscriberIDs, zoneIDs []string, timeRange string, def models.TimeRange) models.Selection {
	sel := models.Selection{TimeRange: def}
	if tr, ok := models.ParseTimeRange(timeRange); ok {
		sel.TimeRange = tr
	}
	for _, id := range dedupe(subscriberIDs) {
		if s, ok := c.subByID[id]; ok {
			sel.Subscribers = append(sel.Subscribers, s)
		}
	}
	for _, id := range dedupe(zoneIDs) {
		if z, ok := c.zoneByID[id]; ok {
			sel.Zones = append(sel.Zones, z)
		}
	}
	if len(sel.Subscribers) == 0 {
		sel.Subscribers = []models.Subscriber{c.subByID[models.AllID]}
	}
	if len(sel.Zones) == 0 {
		sel.Zones = []models.Zone{c.zoneByID[models.AllID]}
	}
	return sel
}

// SelectionFromQuery reads the repeatable subscriber and zone parameters
// and the range parameter of a request query.
func (c *Catalog) SelectionFromQuery(q url.Values, def models.TimeRange) models.Selection {
	return c.Selection(q["subscriber"], q["zone"], q.Get("range"), def)
}

func dedupe(ids []string) []string {
	var out []string
	for _, raw := range ids {
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if id != "" && !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
	}
	return out
}

// HasFileApp reports whether the named subscriber runs a file application.
func (c *Catalog) HasFileApp(name string) bool {
	return slices.Contains(c.doc.FileAppSubscribers, name)
}

// FileAppCount is the number of subscribers running file applications.
func (c *Catalog) FileAppCount() int { return len(c.doc.FileAppSubscribers) }

// SubscriberMetrics returns the tenant table.
func (c *Catalog) SubscriberMetrics() []models.SubscriberMetric {
	return slices.Clone(c.doc.SubscriberMetrics)
}

// SubscriberMetric looks up one subscriber's row.
func (c *Catalog) SubscriberMetric(id string) (models.SubscriberMetric, bool) {
	m, ok := c.metricsByID[id]
	return m, ok
}

func (c *Catalog) Logs() []models.LogEntry { return slices.Clone(c.doc.Logs) }

func (c *Catalog) JobRuns() []models.JobRun { return slices.Clone(c.doc.JobRuns) }

func (c *Catalog) Traces() []models.Trace { return slices.Clone(c.doc.Traces) }

func (c *Catalog) FailureReasons() []models.FailureReason {
	return slices.Clone(c.doc.FailureReasons)
}

func (c *Catalog) LatencyBuckets() []models.LatencyBucket {
	return slices.Clone(c.doc.LatencyBuckets)
}

func (c *Catalog) Features() []models.FeatureAdoption { return slices.Clone(c.doc.Features) }

func (c *Catalog) Contributors() []Contributor { return slices.Clone(c.doc.Contributors) }

func (c *Catalog) Topics() []models.Topic { return slices.Clone(c.doc.Topics) }

func (c *Catalog) Subscriptions() []models.TopicSubscription {
	return slices.Clone(c.doc.Subscriptions)
}

// Topic looks up a topic by id.
func (c *Catalog) Topic(id string) (models.Topic, bool) {
	for _, t := range c.doc.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return models.Topic{}, false
}

// Subscription looks up a topic subscription by id.
func (c *Catalog) Subscription(id string) (models.TopicSubscription, bool) {
	for _, s := range c.doc.Subscriptions {
		if s.ID == id {
			return s, true
		}
	}
	return models.TopicSubscription{}, false
}

func (c *Catalog) AlertableMetrics() []models.AlertableMetric {
	return slices.Clone(c.doc.AlertableMetrics)
}

// IsAlertable reports whether alert rules may watch metricID.
func (c *Catalog) IsAlertable(metricID string) bool {
	for _, m := range c.doc.AlertableMetrics {
		if m.ID == metricID {
			return true
		}
	}
	return false
}

// DefaultAlertRules returns the seed rules with fresh action slices.
func (c *Catalog) DefaultAlertRules() []models.AlertRule {
	out := make([]models.AlertRule, len(c.doc.AlertRules))
	for i, r := range c.doc.AlertRules {
		r.Actions = slices.Clone(r.Actions)
		out[i] = r
	}
	return out
}

func (c *Catalog) TriggeredAlerts() []TriggeredAlertSeed {
	return slices.Clone(c.doc.TriggeredAlerts)
}

func (c *Catalog) Tasks() []models.Task { return slices.Clone(c.doc.Tasks) }

// TSheet returns the baseline for app ("file" or "message").
func (c *Catalog) TSheet(app string) (TSheetSpec, bool) {
	ts, ok := c.doc.TSheets[app]
	return ts, ok
}

func (c *Catalog) ClusterKeys() []models.ClusterKey { return slices.Clone(c.doc.ClusterKeys) }

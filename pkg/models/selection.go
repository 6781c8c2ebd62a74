package models

import "strings"

// AllID is the sentinel id meaning "every subscriber" or "every zone".
const AllID = "all"

// Zone is a deployment region subscribers are hosted in.
type Zone struct {
	ID   string `json:"id" yaml:"id" example:"us-east-1"`
	Name string `json:"name" yaml:"name" example:"US-East-1"`
}

// Subscriber is a tenant of the platform.
type Subscriber struct {
	ID     string `json:"id" yaml:"id" example:"hdfc"`
	Name   string `json:"name" yaml:"name" example:"HDFC"`
	ZoneID string `json:"zone_id" yaml:"zone_id" example:"apac-north-1"`
}

// TimeRange is the dashboard's reporting window.
type TimeRange string

const (
	Last1H  TimeRange = "1h"
	Last24H TimeRange = "24h"
	Last7D  TimeRange = "7d"
	Last30D TimeRange = "30d"
)

// TimeRanges lists the supported windows, shortest first.
var TimeRanges = []TimeRange{Last1H, Last24H, Last7D, Last30D}

// ParseTimeRange accepts "24h" as well as the dashboard label "Last 24h".
// ok is false for anything else.
func ParseTimeRange(s string) (TimeRange, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "last"))
	for _, tr := range TimeRanges {
		if s == string(tr) {
			return tr, true
		}
	}
	return "", false
}

// Label returns the dashboard label, e.g. "Last 24h".
func (tr TimeRange) Label() string {
	return "Last " + string(tr)
}

// Selection is the filter context every derivation runs against.
type Selection struct {
	Subscribers []Subscriber `json:"subscribers"`
	Zones       []Zone       `json:"zones"`
	TimeRange   TimeRange    `json:"time_range" example:"24h"`
}

// IsAllSubscribers reports whether subs means "every subscriber": empty, or
// containing the sentinel.
func IsAllSubscribers(subs []Subscriber) bool {
	if len(subs) == 0 {
		return true
	}
	for _, s := range subs {
		if s.ID == AllID {
			return true
		}
	}
	return false
}

// IsAllZones reports whether zones means "every zone".
func IsAllZones(zones []Zone) bool {
	if len(zones) == 0 {
		return true
	}
	for _, z := range zones {
		if z.ID == AllID {
			return true
		}
	}
	return false
}

// SingleSubscriber returns the one concrete subscriber selected, if exactly
// one is.
func (s Selection) SingleSubscriber() (Subscriber, bool) {
	if len(s.Subscribers) == 1 && s.Subscribers[0].ID != AllID {
		return s.Subscribers[0], true
	}
	return Subscriber{}, false
}

// SubscriberIDs returns the selected subscriber ids.
func (s Selection) SubscriberIDs() []string {
	ids := make([]string, len(s.Subscribers))
	for i, sub := range s.Subscribers {
		ids[i] = sub.ID
	}
	return ids
}

// ZoneIDs returns the selected zone ids.
func (s Selection) ZoneIDs() []string {
	ids := make([]string, len(s.Zones))
	for i, z := range s.Zones {
		ids[i] = z.ID
	}
	return ids
}

package metrics

import (
	"testing"

	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
)

func TestDrilldown_SingleSubscriber(t *testing.T) {
	e := newTestEngine(t, 1)

	for _, zoneIDs := range [][]string{nil, {"eu-west-1"}, {"us-east-1", "apac-north-1"}} {
		sel := catalog.Default().Selection([]string{"hdfc"}, zoneIDs, "24h", models.Last24H)
		d := e.Drilldown("files_processed", "Number of Files Processed", sel)

		if d.MetricTitle != "Number of Files Processed - HDFC" {
			t.Errorf("MetricTitle = %q", d.MetricTitle)
		}
		if d.ContributorTitle != "Key Metrics for HDFC" {
			t.Errorf("ContributorTitle = %q", d.ContributorTitle)
		}
		want := []models.Contributor{
			{Name: "NSM (MFT/Events)", Value: "150K"},
			{Name: "Health", Value: "99.20%", Change: "Needs Attention"},
			{Name: "Error Rate", Value: "4.50%", Change: "High"},
			{Name: "Queue Lag", Value: "1500 items", Change: "High"},
			{Name: "Top Failure Reason", Value: "Schema validation failed"},
		}
		if len(d.Contributors) != len(want) {
			t.Fatalf("zones %v: contributors = %+v", zoneIDs, d.Contributors)
		}
		for i := range want {
			if d.Contributors[i] != want[i] {
				t.Errorf("zones %v: contributor %d = %+v, want %+v", zoneIDs, i, d.Contributors[i], want[i])
			}
		}
	}
}

func TestDrilldown_HealthySubscriber(t *testing.T) {
	d := newTestEngine(t, 1).Drilldown("health", "Health", selection(models.Last24H, "cardworks"))
	if d.Contributors[1].Change != "Healthy" || d.Contributors[2].Change != "Normal" || d.Contributors[3].Change != "Normal" {
		t.Errorf("cardworks contributors = %+v", d.Contributors)
	}
	for _, l := range d.Logs {
		if l.Subscriber != "Cardworks" {
			t.Errorf("log for %q in Cardworks drilldown", l.Subscriber)
		}
	}
}

func TestDrilldown_MissingSubscriberMetrics(t *testing.T) {
	e := newTestEngine(t, 1)
	sel := models.Selection{
		Subscribers: []models.Subscriber{{ID: "ghost", Name: "Ghost"}},
		TimeRange:   models.Last24H,
	}
	d := e.Drilldown("x", "X", sel)
	if d.Contributors[0].Value != "N/A" || d.Contributors[1].Value != "100.00%" || d.Contributors[3].Value != "0 items" {
		t.Errorf("placeholder contributors = %+v", d.Contributors)
	}
}

func TestDrilldown_All(t *testing.T) {
	e := newTestEngine(t, 1)
	d := e.Drilldown("file_downloads", "File Downloads", selection(models.Last1H))

	if d.MetricTitle != "File Downloads - Details" || d.ContributorTitle != "Top Contributing Subscribers" {
		t.Errorf("titles = (%q, %q)", d.MetricTitle, d.ContributorTitle)
	}
	if len(d.Contributors) != maxContributors {
		t.Errorf("contributors = %d, want %d", len(d.Contributors), maxContributors)
	}
	if len(d.TrendData) != 30 {
		t.Errorf("trend points = %d, want 30 regardless of range", len(d.TrendData))
	}
	if len(d.Logs) != maxDrilldownLogs {
		t.Errorf("logs = %d, want %d", len(d.Logs), maxDrilldownLogs)
	}
	bases := map[string]string{"HDFC": "350K", "Optum": "280K", "Cardworks": "150K", "Jenius Bank": "120K",
		"Sparrow": "80K", "Lakestack": "95K", "ITP": "400K", "Tachyon Credit": "110K"}
	for _, c := range d.Contributors {
		if bases[c.Name] != c.Value {
			t.Errorf("%s value = %q, want %q", c.Name, c.Value, bases[c.Name])
		}
	}
}

func TestDrilldown_MultiSelectNarrowsRoster(t *testing.T) {
	d := newTestEngine(t, 1).Drilldown("x", "X", selection(models.Last24H, "hdfc", "optum"))
	if len(d.Contributors) != 2 {
		t.Fatalf("contributors = %+v, want HDFC and Optum only", d.Contributors)
	}
	for _, c := range d.Contributors {
		if c.Name != "HDFC" && c.Name != "Optum" {
			t.Errorf("unexpected contributor %q", c.Name)
		}
	}
}

package metrics

import (
	"reflect"
	"testing"
	"time"

	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
)

var fixedNow = time.Date(2025, time.September, 5, 14, 25, 0, 0, time.UTC)

func newTestEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	return NewEngine(catalog.Default(),
		WithSource(NewSeededSource(seed)),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func selection(tr models.TimeRange, subscriberIDs ...string) models.Selection {
	return catalog.Default().Selection(subscriberIDs, nil, string(tr), models.Last24H)
}

func kpiByID(t *testing.T, kpis []models.KPI, id string) models.KPI {
	t.Helper()
	for _, k := range kpis {
		if k.ID == id {
			return k
		}
	}
	t.Fatalf("kpi %q not found", id)
	return models.KPI{}
}

func TestBatchJobSummary(t *testing.T) {
	e := newTestEngine(t, 1)

	tests := []struct {
		name string
		sel  models.Selection
		want models.BatchJobSummary
	}{
		{
			name: "all 24h",
			sel:  selection(models.Last24H),
			want: models.BatchJobSummary{
				JobsRun: 508, JobsRunChange: "+2.0%",
				JobsFailed: 3, JobsFailedChange: "-5.0%",
				JobsSucceeded: 505, JobsSucceededChange: "+2.2%",
				RecordsProcessed: 115226, RecordsProcessedChange: "+3.1%",
				FilesProcessed: 47, FilesProcessedChange: "+5.8%",
			},
		},
		{
			name: "all 30d",
			sel:  selection(models.Last30D),
			want: models.BatchJobSummary{
				JobsRun: 15240, JobsRunChange: "+2.0%",
				JobsFailed: 78, JobsFailedChange: "-5.0%",
				JobsSucceeded: 15162, JobsSucceededChange: "+2.2%",
				RecordsProcessed: 3456789, RecordsProcessedChange: "+3.1%",
				FilesProcessed: 1410, FilesProcessedChange: "+5.8%",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.BatchJobSummary(tt.sel); got != tt.want {
				t.Errorf("BatchJobSummary =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestBatchJobSummary_SucceededIsRunMinusFailed(t *testing.T) {
	e := newTestEngine(t, 1)
	for _, sel := range []models.Selection{
		selection(models.Last1H, "optum"),
		selection(models.Last1H, "hdfc", "itp"),
		selection(models.Last7D, "sparrow"),
		selection(models.Last30D),
	} {
		got := e.BatchJobSummary(sel)
		want := max(got.JobsRun-got.JobsFailed, 0)
		if got.JobsSucceeded != want {
			t.Errorf("%v: JobsSucceeded = %d, want %d (run=%d failed=%d)",
				sel.SubscriberIDs(), got.JobsSucceeded, want, got.JobsRun, got.JobsFailed)
		}
	}
}

func TestFileKPIs_All24h(t *testing.T) {
	kpis := newTestEngine(t, 1).FileKPIs(selection(models.Last24H))
	if len(kpis) != 7 {
		t.Fatalf("len = %d, want 7", len(kpis))
	}

	tests := []struct {
		id     string
		value  string
		change string
		status models.Status
	}{
		{"num_file_apps", "8", "+2 this month", models.StatusGreen},
		{"files_processed", "47", "+5.8%", models.StatusGreen},
		{"file_downloads", "30.0K", "+4.8%", models.StatusGreen},
		{"file_uploads", "10.0K", "+6.1%", models.StatusGreen},
		{"job_runs", "508", "+2.0%", models.StatusGreen},
		{"error_rate", "0.85%", "+15.0%", models.StatusAmber},
		{"avg_latency", "1.2s", "+12.1%", models.StatusAmber},
	}
	for _, tt := range tests {
		k := kpiByID(t, kpis, tt.id)
		if k.Value != tt.value || k.Change != tt.change || k.Status != tt.status {
			t.Errorf("%s = (%q, %q, %s), want (%q, %q, %s)",
				tt.id, k.Value, k.Change, k.Status, tt.value, tt.change, tt.status)
		}
		if len(k.Sparkline) != 12 || k.Sparkline[0].Name != "t0" || k.Sparkline[11].Name != "t11" {
			t.Errorf("%s sparkline = %v", tt.id, k.Sparkline)
		}
	}
}

func TestFileKPIs_AppCount(t *testing.T) {
	e := newTestEngine(t, 1)
	tests := []struct {
		name string
		sel  models.Selection
		want string
	}{
		{"all", selection(models.Last24H), "8"},
		{"single", selection(models.Last24H, "hdfc"), "1"},
		{"multi", selection(models.Last24H, "hdfc", "optum", "itp"), "3"},
	}
	for _, tt := range tests {
		if got := kpiByID(t, e.FileKPIs(tt.sel), "num_file_apps").Value; got != tt.want {
			t.Errorf("%s: num_file_apps = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFileKPIs_RateLikeScaleInversely(t *testing.T) {
	e := newTestEngine(t, 1)
	// hdfc: filter factor ~0.4746.
	kpis := e.FileKPIs(selection(models.Last24H, "hdfc"))
	if got := kpiByID(t, kpis, "error_rate"); got.Value != "1.79%" || got.Status != models.StatusAmber {
		t.Errorf("error_rate = (%q, %s), want (1.79%%, amber)", got.Value, got.Status)
	}
	if got := kpiByID(t, kpis, "avg_latency"); got.Value != "2.5s" || got.Status != models.StatusRed {
		t.Errorf("avg_latency = (%q, %s), want (2.5s, red)", got.Value, got.Status)
	}
	if got := kpiByID(t, kpis, "file_downloads"); got.Status != models.StatusAmber {
		t.Errorf("file_downloads status = %s, want amber", got.Status)
	}
}

func TestMessageKPIs(t *testing.T) {
	e := newTestEngine(t, 1)

	all := e.MessageKPIs(selection(models.Last24H))
	want := map[string][3]string{
		"events_published": {"25.4M", "+12.3%", "green"},
		"health_msg":       {"99.91%", "-0.08%", "amber"},
		"error_rate_msg":   {"1.52%", "+25.3%", "red"},
		"p99_latency":      {"950ms", "+8.5%", "amber"},
	}
	for id, w := range want {
		k := kpiByID(t, all, id)
		if k.Value != w[0] || k.Change != w[1] || string(k.Status) != w[2] {
			t.Errorf("%s = (%q, %q, %s), want %v", id, k.Value, k.Change, k.Status, w)
		}
	}

	// A small selection reports a deterministic decrease in events.
	hdfc := kpiByID(t, e.MessageKPIs(selection(models.Last24H, "hdfc")), "events_published")
	if hdfc.Change != "-5.8%" || hdfc.ChangeType != models.ChangeDecrease {
		t.Errorf("hdfc events change = (%q, %s), want (-5.8%%, decrease)", hdfc.Change, hdfc.ChangeType)
	}
}

func TestAdoptionKPIs_All(t *testing.T) {
	kpis := newTestEngine(t, 1).AdoptionKPIs(selection(models.Last30D))
	want := map[string][2]string{
		"mau":                {"375.0K", "green"},
		"far":                {"68%", "green"},
		"stickiness":         {"45%", "amber"},
		"new_feature_uptake": {"35%", "green"},
	}
	for id, w := range want {
		k := kpiByID(t, kpis, id)
		if k.Value != w[0] || string(k.Status) != w[1] {
			t.Errorf("%s = (%q, %s), want %v", id, k.Value, k.Status, w)
		}
	}
}

func TestKPIs_HeadlinesIdempotent(t *testing.T) {
	e := newTestEngine(t, 7)
	sel := selection(models.Last7D, "sparrow", "itp")

	generators := map[string]func(models.Selection) []models.KPI{
		"file":     e.FileKPIs,
		"message":  e.MessageKPIs,
		"adoption": e.AdoptionKPIs,
		"dia":      e.DiaKPIs,
		"perseus":  e.PerseusKPIs,
		"atropos":  e.AtroposKPIs,
	}
	for name, gen := range generators {
		first, second := gen(sel), gen(sel)
		sparklinesDiffer := false
		for i := range first {
			a, b := first[i], second[i]
			if a.Value != b.Value || a.Change != b.Change || a.Status != b.Status {
				t.Errorf("%s/%s headline changed between calls: %+v vs %+v", name, a.ID, a, b)
			}
			if !reflect.DeepEqual(a.Sparkline, b.Sparkline) {
				sparklinesDiffer = true
			}
		}
		// Sparklines draw from the source, so repeated calls diverge.
		if !sparklinesDiffer {
			t.Errorf("%s: sparklines identical across calls", name)
		}
	}
}

func TestSeededEnginesAgree(t *testing.T) {
	sel := selection(models.Last24H, "hdfc")
	a, b := newTestEngine(t, 99), newTestEngine(t, 99)

	if !reflect.DeepEqual(a.FileKPIs(sel), b.FileKPIs(sel)) {
		t.Error("FileKPIs differ for equal seeds")
	}
	if !reflect.DeepEqual(a.Trend("files", sel), b.Trend("files", sel)) {
		t.Error("Trend differs for equal seeds")
	}
	if !reflect.DeepEqual(a.DiaSupplementary(sel), b.DiaSupplementary(sel)) {
		t.Error("DiaSupplementary differs for equal seeds")
	}
}

func TestPerseusKPIs(t *testing.T) {
	kpis := newTestEngine(t, 1).PerseusKPIs(selection(models.Last24H))
	wantIDs := []string{"perseus_mjr_dash", "perseus_health_dash", "perseus_error_dash", "perseus_records_dash"}
	wantValues := []string{"4.5M", "99.99%", "0.21%", "1.2B"}
	for i, k := range kpis {
		if k.ID != wantIDs[i] || k.Value != wantValues[i] {
			t.Errorf("kpi %d = (%s, %q), want (%s, %q)", i, k.ID, k.Value, wantIDs[i], wantValues[i])
		}
	}
	if kpis[3].Change != "+10.1%" || kpis[3].Status != models.StatusGreen {
		t.Errorf("records = %+v", kpis[3])
	}
}

func TestAtroposKPIs(t *testing.T) {
	kpis := newTestEngine(t, 1).AtroposKPIs(selection(models.Last24H, "hdfc"))
	if len(kpis) != 3 {
		t.Fatalf("len = %d, want 3", len(kpis))
	}
	if kpis[0].Value != "25.4M" || kpis[1].Value != "99.91%" || kpis[1].Status != models.StatusAmber {
		t.Errorf("atropos headline cards = %+v, %+v", kpis[0], kpis[1])
	}
	if kpis[2].ID != "atropos_css_dash" || kpis[2].Value != "4.8/5" || kpis[2].Change != "+0.1" {
		t.Errorf("css card = %+v", kpis[2])
	}
}

func TestDiaNorthStarKPIs(t *testing.T) {
	got := newTestEngine(t, 1).DiaNorthStarKPIs(selection(models.Last24H))
	want := []models.NorthStarKPI{
		{ID: "file_downloads_nsm", Title: "File Downloads", Value: "915,400", Change: "+2.2% vs last month", ChangeType: models.ChangeIncrease},
		{ID: "file_uploads_nsm", Title: "File Uploads", Value: "300,000", Change: "+3.1% vs last month", ChangeType: models.ChangeIncrease},
		{ID: "active_users_nsm", Title: "Active Users", Value: "124", Change: "+2.5% vs last month", ChangeType: models.ChangeIncrease},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiaNorthStarKPIs =\n%+v\nwant\n%+v", got, want)
	}
}

func TestDiaSupplementary_Shape(t *testing.T) {
	got := newTestEngine(t, 3).DiaSupplementary(selection(models.Last24H))
	for name, series := range map[string][]models.Point{
		"uptime":  got.YearlyUptime,
		"error":   got.ErrorRate,
		"speed":   got.AvgTransferSpeed,
		"latency": got.TransferLatency,
	} {
		if len(series) != 12 || series[0].Name != "Feb" || series[11].Name != "Jan" {
			t.Errorf("%s series = %v", name, series)
		}
	}
	if len(got.MonthlyClusterCost.Keys) != 6 || len(got.MonthlyClusterCost.Data) != 12 {
		t.Fatalf("cluster cost = %+v", got.MonthlyClusterCost)
	}
	hades := got.MonthlyClusterCost.Data[0].Costs["HADES"]
	if hades < 25 || hades >= 40 {
		t.Errorf("HADES cost = %v, want in [25, 40)", hades)
	}
}

func TestPerseusCategorizedMetrics(t *testing.T) {
	got := newTestEngine(t, 1).PerseusCategorizedMetrics(selection(models.Last24H))
	if got.Health[0].Value != "99.9900%" || got.Health[1].Value != "0.21%" {
		t.Errorf("health = %+v", got.Health)
	}
	if got.Performance[0].Value != "2.0K" {
		t.Errorf("throughput = %q, want 2.0K", got.Performance[0].Value)
	}
	if got.Business[0].Value != "$15.2K" || got.Business[1].Value != "$0.00012" {
		t.Errorf("business = %+v", got.Business)
	}
	if got.FeatureUsage[0].Value != "125" {
		t.Errorf("operator usage = %q, want 125", got.FeatureUsage[0].Value)
	}
}

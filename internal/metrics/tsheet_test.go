package metrics

import "testing"

func TestTSheet(t *testing.T) {
	e := newTestEngine(t, 1)

	file, ok := e.TSheet(TSheetFile)
	if !ok {
		t.Fatal("file tsheet missing")
	}
	wantCols := []string{"Last 1 hour", "Last 24 h", "Last 7 days", "Last 30 days", "Till Date (9/5)"}
	if len(file.TimeRanges) != len(wantCols) {
		t.Fatalf("TimeRanges = %v", file.TimeRanges)
	}
	for i, c := range wantCols {
		if file.TimeRanges[i] != c {
			t.Errorf("column %d = %q, want %q", i, file.TimeRanges[i], c)
		}
		if _, ok := file.Data[c]; !ok {
			t.Errorf("no data for column %q", c)
		}
	}
	if got := file.Data["Last 24 h"]["avgLatency"]; got != "1.3 s" {
		t.Errorf("24h avgLatency = %q", got)
	}
	if got := file.Data["Till Date (9/5)"]["numFileApps"]; got != "13" {
		t.Errorf("till date numFileApps = %q", got)
	}

	msg, ok := e.TSheet(TSheetMessage)
	if !ok {
		t.Fatal("message tsheet missing")
	}
	if len(msg.Metrics) != 14 || msg.Data["Last 1 hour"]["msgPublished"] != "700" {
		t.Errorf("message tsheet = %d metrics, 1h msgPublished %q", len(msg.Metrics), msg.Data["Last 1 hour"]["msgPublished"])
	}

	if _, ok := e.TSheet("video"); ok {
		t.Error("unknown app reported ok")
	}
}

func TestTSheet_DataIsCopied(t *testing.T) {
	e := newTestEngine(t, 1)
	first, _ := e.TSheet(TSheetFile)
	first.Data["Last 1 hour"]["jobRuns"] = "mutated"

	second, _ := e.TSheet(TSheetFile)
	if second.Data["Last 1 hour"]["jobRuns"] != "6K" {
		t.Error("T-sheet data shares state with the catalog")
	}
}

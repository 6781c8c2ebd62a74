package metrics

import (
	"fmt"
	"maps"

	"github.com/HerbHall/olympushub/pkg/catalog"
	"github.com/HerbHall/olympushub/pkg/models"
)

// T-sheet applications.
const (
	TSheetFile    = "file"
	TSheetMessage = "message"
)

// tsheetColumns maps catalog column keys to their display labels, in
// display order. The till-date label is built from the clock.
var tsheetColumns = []struct {
	key   string
	label string
}{
	{"1h", "Last 1 hour"},
	{"24h", "Last 24 h"},
	{"7d", "Last 7 days"},
	{"30d", "Last 30 days"},
}

// TSheet returns the time-window table for app. The table does not depend
// on the selection. ok is false for an unknown app.
func (e *Engine) TSheet(app string) (models.TSheet, bool) {
	sheet, ok := e.cat.TSheet(app)
	if !ok {
		return models.TSheet{}, false
	}
	e.observe("tsheet_" + app)

	now := e.now()
	tillDate := fmt.Sprintf("Till Date (%d/%d)", int(now.Month()), now.Day())

	ts := models.TSheet{
		Metrics: sheet.Metrics,
		Data:    make(map[string]map[string]string, len(tsheetColumns)+1),
	}
	for _, col := range tsheetColumns {
		ts.Data[col.label] = maps.Clone(sheet.Columns[col.key])
		ts.TimeRanges = append(ts.TimeRanges, col.label)
	}
	ts.Data[tillDate] = maps.Clone(sheet.Columns[catalog.TillDateColumn])
	ts.TimeRanges = append(ts.TimeRanges, tillDate)
	return ts, true
}

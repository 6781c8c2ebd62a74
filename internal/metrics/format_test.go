package metrics

import "testing"

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{47, "47"},
		{999, "999"},
		{999.4, "999"},
		{1000, "1.0K"},
		{30000, "30.0K"},
		{15240, "15.2K"},
		{2.5e6, "2.5M"},
		{1.2e9, "1.2B"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{124, "124"},
		{915400, "915,400"},
		{434440.7, "434,441"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatGrouped(tt.in); got != tt.want {
			t.Errorf("FormatGrouped(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package metrics

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/HerbHall/olympushub/pkg/models"
)

func TestFilterFactor_AllIsIdentity(t *testing.T) {
	all := models.Subscriber{ID: models.AllID}
	allZone := models.Zone{ID: models.AllID}

	tests := []struct {
		name  string
		subs  []models.Subscriber
		zones []models.Zone
	}{
		{"nil lists", nil, nil},
		{"empty lists", []models.Subscriber{}, []models.Zone{}},
		{"sentinel subscribers", []models.Subscriber{all}, nil},
		{"sentinel zones", nil, []models.Zone{allZone}},
		{"both sentinels", []models.Subscriber{all}, []models.Zone{allZone}},
		{"sentinel mixed in", []models.Subscriber{{ID: "hdfc"}, all}, []models.Zone{{ID: "eu-west-1"}, allZone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterFactor(tt.subs, tt.zones); got != 1.0 {
				t.Errorf("FilterFactor = %v, want exactly 1", got)
			}
		})
	}
}

func TestFilterFactor_Known(t *testing.T) {
	tests := []struct {
		subs  []string
		zones []string
		want  float64
	}{
		{[]string{"hdfc"}, nil, 0.4745918466701369},
		{[]string{"hdfc", "optum"}, nil, 0.7740806767245885},
		{nil, []string{"eu-west-1"}, 0.6124113374271474},
		{[]string{"hdfc"}, []string{"eu-west-1"}, 0.3109569766675122},
	}
	for _, tt := range tests {
		got := FilterFactor(subs(tt.subs...), zones(tt.zones...))
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FilterFactor(%v, %v) = %v, want %v", tt.subs, tt.zones, got, tt.want)
		}
	}
}

func TestFilterFactor_OrderIndependent(t *testing.T) {
	a := FilterFactor(subs("hdfc", "optum", "itp"), zones("eu-west-1", "us-east-1"))
	b := FilterFactor(subs("itp", "hdfc", "optum"), zones("us-east-1", "eu-west-1"))
	if a != b {
		t.Errorf("permuted selection changed factor: %v != %v", a, b)
	}
}

func TestFilterFactor_Range(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789-_"
	for range 2000 {
		n := 1 + r.IntN(4)
		ids := make([]string, n)
		for i := range ids {
			b := make([]byte, 1+r.IntN(16))
			for j := range b {
				b[j] = alphabet[r.IntN(len(alphabet))]
			}
			ids[i] = string(b)
		}
		if slices.Contains(ids, models.AllID) {
			continue
		}
		got := FilterFactor(subs(ids...), nil)
		if got < 0.2 || got > 0.8 {
			t.Fatalf("FilterFactor(%v) = %v, outside [0.2, 0.8]", ids, got)
		}
	}
}

func TestTimeRangeFactor(t *testing.T) {
	tests := []struct {
		tr   models.TimeRange
		want float64
	}{
		{models.Last1H, 1.0 / 720},
		{models.Last24H, 1.0 / 30},
		{models.Last7D, 7.0 / 30},
		{models.Last30D, 1},
		{"90d", 1},
		{"", 1},
	}
	for _, tt := range tests {
		if got := TimeRangeFactor(tt.tr); got != tt.want {
			t.Errorf("TimeRangeFactor(%q) = %v, want %v", tt.tr, got, tt.want)
		}
	}
}

func TestSafeDivisor(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, MinDivisor},
		{-1, MinDivisor},
		{0.05, MinDivisor},
		{math.NaN(), MinDivisor},
		{0.1, 0.1},
		{0.47, 0.47},
		{1, 1},
	}
	for _, tt := range tests {
		if got := SafeDivisor(tt.in); got != tt.want {
			t.Errorf("SafeDivisor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func subs(ids ...string) []models.Subscriber {
	out := make([]models.Subscriber, len(ids))
	for i, id := range ids {
		out[i] = models.Subscriber{ID: id}
	}
	return out
}

func zones(ids ...string) []models.Zone {
	out := make([]models.Zone, len(ids))
	for i, id := range ids {
		out[i] = models.Zone{ID: id}
	}
	return out
}

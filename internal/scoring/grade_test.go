package scoring

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"85", 85, true},
		{" 85.5 ", 85.5, true},
		{"85%", 85, true},
		{"85 %", 85, true},
		{"8.2", 8.2, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-3", 0, false},
		{"NaN", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseGrade(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBandBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) float64
		grade string
		want  float64
	}{
		{"hsc 95 is not above 95", HSCWeight, "95", 4},
		{"hsc 95.01", HSCWeight, "95.01", 5},
		{"hsc 91", HSCWeight, "91", 4},
		{"hsc 90.99", HSCWeight, "90.99", 3},
		{"hsc 86", HSCWeight, "86", 3},
		{"hsc 81", HSCWeight, "81", 2},
		{"hsc 80", HSCWeight, "80", 1},
		{"hsc missing", HSCWeight, "", 1},

		{"ug 90 is not above 90", UGDegreeWeight, "90", 7.5},
		{"ug 90.5", UGDegreeWeight, "90.5", 10},
		{"ug 81", UGDegreeWeight, "81", 7.5},
		{"ug 71", UGDegreeWeight, "71", 5},
		{"ug 60", UGDegreeWeight, "60", 3},
		{"ug 59.9", UGDegreeWeight, "59.9", 0},
		{"ug cgpa scale", UGDegreeWeight, "9.1", 0},

		{"pg 91", PGDegreeWeight, "91", 15},
		{"pg 85", PGDegreeWeight, "85", 12.5},
		{"pg 71", PGDegreeWeight, "71", 10},
		{"pg 60", PGDegreeWeight, "60", 5},
		{"pg garbage", PGDegreeWeight, "n/a", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.grade))
		})
	}
}

func TestHSCWeightIsMonotonic(t *testing.T) {
	prev := HSCWeight("0")
	for p := 0.0; p <= 100.0; p += 0.25 {
		got := HSCWeight(strconv.FormatFloat(p, 'f', 2, 64))
		assert.GreaterOrEqualf(t, got, prev, "hsc weight dropped at %.2f", p)
		prev = got
	}
}

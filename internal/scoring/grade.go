package scoring

import (
	"math"
	"strconv"
	"strings"
)

// ParseGrade reads a stored grade string ("85", "85.5", "85%", "8.2").
// The value is returned as-is: CGPA-scale entries are not converted to a
// percentage, so they fall into the low bands of the percentage tables.
func ParseGrade(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// band is one row of a threshold table. Rows are checked top-down and the
// first match wins.
type band struct {
	min       float64
	exclusive bool
	weight    float64
}

func (b band) matches(v float64) bool {
	if b.exclusive {
		return v > b.min
	}
	return v >= b.min
}

type bandTable struct {
	rows  []band
	floor float64
}

// weigh returns the floor weight for a missing or unparsable grade.
func (t bandTable) weigh(grade string) float64 {
	v, ok := ParseGrade(grade)
	if !ok {
		return t.floor
	}
	for _, b := range t.rows {
		if b.matches(v) {
			return b.weight
		}
	}
	return t.floor
}

var (
	hscBands = bandTable{
		rows: []band{
			{min: 95, exclusive: true, weight: 5},
			{min: 91, weight: 4},
			{min: 86, weight: 3},
			{min: 81, weight: 2},
		},
		floor: 1,
	}
	ugBands = bandTable{
		rows: []band{
			{min: 90, exclusive: true, weight: 10},
			{min: 81, weight: 7.5},
			{min: 71, weight: 5},
			{min: 60, weight: 3},
		},
		floor: 0,
	}
	pgBands = bandTable{
		rows: []band{
			{min: 90, exclusive: true, weight: 15},
			{min: 81, weight: 12.5},
			{min: 71, weight: 10},
			{min: 60, weight: 5},
		},
		floor: 0,
	}
)

func HSCWeight(grade string) float64      { return hscBands.weigh(grade) }
func UGDegreeWeight(grade string) float64 { return ugBands.weigh(grade) }
func PGDegreeWeight(grade string) float64 { return pgBands.weigh(grade) }

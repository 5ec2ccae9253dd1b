package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/facultyportal/internal/utils"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Grade  string `json:"grade" validate:"required,grade"`
	Year   int    `json:"year" validate:"required,year"`
	Status string `json:"status" validate:"required,oneof='Pursuing' 'Degree Awarded'"`
	Done   *int   `json:"done" validate:"required_unless=Status Pursuing,omitempty,year"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestCheck_Valid(t *testing.T) {
	s := sample{Name: "x", Grade: "85%", Year: 2010, Status: "Pursuing"}
	assert.NoError(t, Check("op", s))
}

func TestCheck_CollectsFieldMessages(t *testing.T) {
	s := sample{Grade: "120", Year: 1800, Status: "Degree Awarded", Date: "12/01/2020"}

	err := Check("op", s)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	var ae *utils.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "name is required", ae.Fields["name"])
	assert.Contains(t, ae.Fields["grade"], "percentage")
	assert.Contains(t, ae.Fields, "year")
	assert.Equal(t, "done is required", ae.Fields["done"])
	assert.Contains(t, ae.Fields, "date")
}

func TestGradeRule(t *testing.T) {
	for _, g := range []string{"0", "9.5", "10", "85", "85.25", "100", "100.00", "99%"} {
		assert.NoErrorf(t, Check("op", sample{Name: "x", Grade: g, Year: 2000, Status: "Pursuing"}), "grade %q", g)
	}
	for _, g := range []string{"101", "-1", "85.123", "abc", "8,5"} {
		assert.Errorf(t, Check("op", sample{Name: "x", Grade: g, Year: 2000, Status: "Pursuing"}), "grade %q", g)
	}
}

func TestYearRuleRejectsFuture(t *testing.T) {
	next := time.Now().Year() + 1
	err := Check("op", sample{Name: "x", Grade: "80", Year: next, Status: "Pursuing"})
	assert.Error(t, err)
}

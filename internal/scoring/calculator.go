// Package scoring computes the eligibility weight of an application from
// its stored sections. Calculate is pure; persisting the result is the
// caller's job.
package scoring

import (
	"errors"
	"strings"

	"github.com/yoockh/facultyportal/internal/models"
)

var ErrNoEducation = errors.New("education record is required")

const (
	experiencePerEntry  = 2.0
	publicationPerEntry = 1.5
	firstAttemptWeight  = 5.0
	mphilWeight         = 5.0
	mphilPGDegree       = "M.Sc"
)

// Inputs is everything the calculator reads for one user. PhD is carried
// for completeness and does not contribute a weight.
type Inputs struct {
	Education    *models.Education
	Experience   []models.Experience
	Publications []models.Publication
	PhD          *models.PhD
}

type Weights struct {
	Medium         float64 `json:"mediumWeight"`
	HSC            float64 `json:"hscWeight"`
	UGDegree       float64 `json:"ugDegreeWeight"`
	PGDegree       float64 `json:"pgDegreeWeight"`
	MPhil          float64 `json:"mphilWeight"`
	UGFirstAttempt float64 `json:"ugFirstAttemptWeight"`
	PGFirstAttempt float64 `json:"pgFirstAttemptWeight"`
	Experience     float64 `json:"experienceWeight"`
	Publications   float64 `json:"publicationsWeight"`
	Total          float64 `json:"totalWeight"`
}

// Sum adds the nine sub-weights.
func (w Weights) Sum() float64 {
	return w.Medium + w.HSC + w.UGDegree + w.PGDegree + w.MPhil +
		w.UGFirstAttempt + w.PGFirstAttempt + w.Experience + w.Publications
}

func (w Weights) Map() map[string]float64 {
	return map[string]float64{
		"mediumWeight":         w.Medium,
		"hscWeight":            w.HSC,
		"ugDegreeWeight":       w.UGDegree,
		"pgDegreeWeight":       w.PGDegree,
		"mphilWeight":          w.MPhil,
		"ugFirstAttemptWeight": w.UGFirstAttempt,
		"pgFirstAttemptWeight": w.PGFirstAttempt,
		"experienceWeight":     w.Experience,
		"publicationsWeight":   w.Publications,
		"totalWeight":          w.Total,
	}
}

// Marks converts the weights into the stored row for userID.
func (w Weights) Marks(userID string) *models.Marks {
	return &models.Marks{
		UserID:               userID,
		MediumWeight:         w.Medium,
		HSCWeight:            w.HSC,
		UGDegreeWeight:       w.UGDegree,
		PGDegreeWeight:       w.PGDegree,
		MPhilWeight:          w.MPhil,
		UGFirstAttemptWeight: w.UGFirstAttempt,
		PGFirstAttemptWeight: w.PGFirstAttempt,
		ExperienceWeight:     w.Experience,
		PublicationsWeight:   w.Publications,
		TotalWeight:          w.Total,
	}
}

func Calculate(in Inputs) (Weights, error) {
	edu := in.Education
	if edu == nil {
		return Weights{}, ErrNoEducation
	}

	w := Weights{
		Medium:       MediumWeight(edu.TenthMedium, edu.TwelfthMedium),
		HSC:          HSCWeight(edu.TwelfthCGPAPercentage),
		UGDegree:     UGDegreeWeight(edu.UGCGPAPercentage),
		PGDegree:     PGDegreeWeight(edu.PGCGPAPercentage),
		Experience:   experiencePerEntry * float64(len(in.Experience)),
		Publications: publicationPerEntry * float64(len(in.Publications)),
	}
	if sameWord(edu.PGDegree, mphilPGDegree) && edu.HasMPhil() {
		w.MPhil = mphilWeight
	}
	if edu.UGFirstAttempt {
		w.UGFirstAttempt = firstAttemptWeight
	}
	if edu.PGFirstAttempt {
		w.PGFirstAttempt = firstAttemptWeight
	}
	w.Total = w.Sum()
	return w, nil
}

// MediumWeight scores the medium of instruction of 10th and 12th.
func MediumWeight(tenth, twelfth string) float64 {
	switch {
	case sameWord(tenth, "english") && sameWord(twelfth, "english"):
		return 5
	case sameWord(tenth, "tamil") && sameWord(twelfth, "tamil"):
		return 2
	default:
		return 3.5
	}
}

func sameWord(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}

// Snapshot records which stored values a calculation used.
type Snapshot struct {
	TenthMedium      string `json:"tenth_medium"`
	TwelfthMedium    string `json:"twelfth_medium"`
	TwelfthGrade     string `json:"twelfth_cgpa_percentage"`
	UGGrade          string `json:"ug_cgpa_percentage"`
	PGGrade          string `json:"pg_cgpa_percentage"`
	PGDegree         string `json:"pg_degree"`
	HasMPhil         bool   `json:"has_mphil"`
	ExperienceCount  int    `json:"experience_count"`
	PublicationCount int    `json:"publication_count"`
	HasPhD           bool   `json:"has_phd"`
}

func NewSnapshot(in Inputs) Snapshot {
	s := Snapshot{
		ExperienceCount:  len(in.Experience),
		PublicationCount: len(in.Publications),
		HasPhD:           in.PhD != nil,
	}
	if e := in.Education; e != nil {
		s.TenthMedium = e.TenthMedium
		s.TwelfthMedium = e.TwelfthMedium
		s.TwelfthGrade = e.TwelfthCGPAPercentage
		s.UGGrade = e.UGCGPAPercentage
		s.PGGrade = e.PGCGPAPercentage
		s.PGDegree = e.PGDegree
		s.HasMPhil = e.HasMPhil()
	}
	return s
}

package models

import "time"

// Education is the pivoted per-user education table: one row per user with
// a column group per level. Grades are stored as text because the form
// accepts either CGPA (0-10) or a percentage (0-100).
type Education struct {
	UserID string `gorm:"column:user_id;size:36;primaryKey" json:"user_id"`

	TenthInstitution    string `gorm:"column:tenth_institution;size:255" json:"tenth_institution"`
	TenthUniversity     string `gorm:"column:tenth_university;size:255" json:"tenth_university"`
	TenthMedium         string `gorm:"column:tenth_medium;size:32" json:"tenth_medium"`
	TenthSpecialization string `gorm:"column:tenth_specialization;size:255" json:"tenth_specialization"`
	TenthCGPAPercentage string `gorm:"column:tenth_cgpa_percentage;size:16" json:"tenth_cgpa_percentage"`
	TenthFirstAttempt   bool   `gorm:"column:tenth_first_attempt" json:"tenth_first_attempt"`
	TenthYear           int    `gorm:"column:tenth_year" json:"tenth_year"`

	TwelfthInstitution    string `gorm:"column:twelfth_institution;size:255" json:"twelfth_institution"`
	TwelfthUniversity     string `gorm:"column:twelfth_university;size:255" json:"twelfth_university"`
	TwelfthMedium         string `gorm:"column:twelfth_medium;size:32" json:"twelfth_medium"`
	TwelfthSpecialization string `gorm:"column:twelfth_specialization;size:255" json:"twelfth_specialization"`
	TwelfthCGPAPercentage string `gorm:"column:twelfth_cgpa_percentage;size:16" json:"twelfth_cgpa_percentage"`
	TwelfthFirstAttempt   bool   `gorm:"column:twelfth_first_attempt" json:"twelfth_first_attempt"`
	TwelfthYear           int    `gorm:"column:twelfth_year" json:"twelfth_year"`

	UGInstitution    string `gorm:"column:ug_institution;size:255" json:"ug_institution"`
	UGUniversity     string `gorm:"column:ug_university;size:255" json:"ug_university"`
	UGMedium         string `gorm:"column:ug_medium;size:32" json:"ug_medium"`
	UGSpecialization string `gorm:"column:ug_specialization;size:255" json:"ug_specialization"`
	UGCGPAPercentage string `gorm:"column:ug_cgpa_percentage;size:16" json:"ug_cgpa_percentage"`
	UGFirstAttempt   bool   `gorm:"column:ug_first_attempt" json:"ug_first_attempt"`
	UGYear           int    `gorm:"column:ug_year" json:"ug_year"`

	PGDegree         string `gorm:"column:pg_degree;size:32" json:"pg_degree"`
	PGInstitution    string `gorm:"column:pg_institution;size:255" json:"pg_institution"`
	PGUniversity     string `gorm:"column:pg_university;size:255" json:"pg_university"`
	PGMedium         string `gorm:"column:pg_medium;size:32" json:"pg_medium"`
	PGSpecialization string `gorm:"column:pg_specialization;size:255" json:"pg_specialization"`
	PGCGPAPercentage string `gorm:"column:pg_cgpa_percentage;size:16" json:"pg_cgpa_percentage"`
	PGFirstAttempt   bool   `gorm:"column:pg_first_attempt" json:"pg_first_attempt"`
	PGYear           int    `gorm:"column:pg_year" json:"pg_year"`

	// M.Phil is optional; the whole group is either present or absent.
	MPhilInstitution    string `gorm:"column:mphil_institution;size:255" json:"mphil_institution,omitempty"`
	MPhilUniversity     string `gorm:"column:mphil_university;size:255" json:"mphil_university,omitempty"`
	MPhilMedium         string `gorm:"column:mphil_medium;size:32" json:"mphil_medium,omitempty"`
	MPhilSpecialization string `gorm:"column:mphil_specialization;size:255" json:"mphil_specialization,omitempty"`
	MPhilCGPAPercentage string `gorm:"column:mphil_cgpa_percentage;size:16" json:"mphil_cgpa_percentage,omitempty"`
	MPhilFirstAttempt   *bool  `gorm:"column:mphil_first_attempt" json:"mphil_first_attempt,omitempty"`
	MPhilYear           *int   `gorm:"column:mphil_year" json:"mphil_year,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Education) TableName() string { return "user_education" }

func (e *Education) HasMPhil() bool {
	return e != nil && e.MPhilYear != nil && *e.MPhilYear != 0
}

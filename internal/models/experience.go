package models

import "time"

type ExperienceType string

const (
	ExperienceTeaching ExperienceType = "Teaching"
	ExperienceIndustry ExperienceType = "Industry"
)

type Experience struct {
	ID             string         `gorm:"column:id;size:36;primaryKey" json:"id"`
	UserID         string         `gorm:"column:user_id;size:36;index" json:"userId"`
	ExperienceType ExperienceType `gorm:"column:experience_type;size:16" json:"experienceType"`
	Organization   string         `gorm:"column:organization;size:255" json:"organization"`
	PostHeld       string         `gorm:"column:post_held;size:255" json:"postHeld"`
	SalaryDrawn    string         `gorm:"column:salary_drawn;size:32" json:"salaryDrawn"`
	FromDate       string         `gorm:"column:from_date;size:10" json:"fromDate"`
	ToDate         string         `gorm:"column:to_date;size:10" json:"toDate"`
	CreatedAt      time.Time      `gorm:"column:created_at" json:"createdAt"`
}

func (Experience) TableName() string { return "experience" }

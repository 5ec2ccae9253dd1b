package models

import "time"

type PhDStatus string

const (
	PhDPursuing        PhDStatus = "Pursuing"
	PhDThesisSubmitted PhDStatus = "Thesis submitted"
	PhDVivaCompleted   PhDStatus = "Viva voce completed"
	PhDDegreeAwarded   PhDStatus = "Degree Awarded"
)

type PhD struct {
	UserID                    string    `gorm:"column:user_id;size:36;primaryKey" json:"user_id"`
	University                string    `gorm:"column:university;size:255" json:"university"`
	Title                     string    `gorm:"column:title;size:512" json:"title"`
	GuideName                 string    `gorm:"column:guide_name;size:255" json:"guide_name"`
	GuideCollege              string    `gorm:"column:guide_college;size:255" json:"guide_college"`
	Status                    PhDStatus `gorm:"column:status;size:32" json:"status"`
	YearOfRegistration        int       `gorm:"column:year_of_registration" json:"year_of_registration"`
	YearOfCompletion          *int      `gorm:"column:year_of_completion" json:"year_of_completion"`
	NoOfPublicationsDuringPhD int       `gorm:"column:no_of_publications_during_phd" json:"no_of_publications_during_phd"`
	NoOfPublicationsPostPhD   int       `gorm:"column:no_of_publications_post_phd" json:"no_of_publications_post_phd"`
	PostPhDExperience         string    `gorm:"column:post_phd_experience;type:text" json:"post_phd_experience"`
	UpdatedAt                 time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PhD) TableName() string { return "phd" }

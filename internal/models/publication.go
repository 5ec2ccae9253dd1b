package models

import "time"

type Publication struct {
	ID              string    `gorm:"column:id;size:36;primaryKey" json:"id"`
	UserID          string    `gorm:"column:user_id;size:36;index" json:"userId"`
	JournalType     string    `gorm:"column:journal_type;size:16" json:"journalType"` // SCI|Scopus
	JournalName     string    `gorm:"column:journal_name;size:255" json:"journalName"`
	Publisher       string    `gorm:"column:publisher;size:255" json:"publisher"`
	PaperTitle      string    `gorm:"column:paper_title;size:512" json:"paperTitle"`
	VolNo           string    `gorm:"column:vol_no;size:32" json:"volNo"`
	DOI             string    `gorm:"column:doi;size:255" json:"doi"`
	PublicationDate string    `gorm:"column:publication_date;size:10" json:"publicationDate"`
	ImpactFactor    string    `gorm:"column:impact_factor;size:16" json:"impactFactor"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Publication) TableName() string { return "publications" }

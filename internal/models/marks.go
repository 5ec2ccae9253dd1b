package models

import (
	"time"

	"gorm.io/datatypes"
)

// Marks is the derived eligibility row. It is rewritten on every
// calculation; Version counts recalculations.
type Marks struct {
	UserID               string         `gorm:"column:user_id;size:36;primaryKey" json:"user_id"`
	MediumWeight         float64        `gorm:"column:medium_weight" json:"medium_weight"`
	HSCWeight            float64        `gorm:"column:hsc_weight" json:"hsc_weight"`
	UGDegreeWeight       float64        `gorm:"column:ug_degree_weight" json:"ug_degree_weight"`
	PGDegreeWeight       float64        `gorm:"column:pg_degree_weight" json:"pg_degree_weight"`
	MPhilWeight          float64        `gorm:"column:mphil_weight" json:"mphil_weight"`
	UGFirstAttemptWeight float64        `gorm:"column:ug_first_attempt_weight" json:"ug_first_attempt_weight"`
	PGFirstAttemptWeight float64        `gorm:"column:pg_first_attempt_weight" json:"pg_first_attempt_weight"`
	ExperienceWeight     float64        `gorm:"column:experience_weight" json:"experience_weight"`
	PublicationsWeight   float64        `gorm:"column:publications_weight" json:"publications_weight"`
	TotalWeight          float64        `gorm:"column:total_weight;index" json:"total_weight"`
	Inputs               datatypes.JSON `gorm:"column:inputs" json:"inputs,omitempty"`
	Version              int64          `gorm:"column:version;default:1" json:"version"`
	CalculatedAt         time.Time      `gorm:"column:calculated_at" json:"calculated_at"`
}

func (Marks) TableName() string { return "marks" }

// MarksHistory is one calculation event kept in the document store.
type MarksHistory struct {
	UserID           string             `bson:"user_id" json:"user_id"`
	Weights          map[string]float64 `bson:"weights" json:"weights"`
	ExperienceCount  int                `bson:"experience_count" json:"experience_count"`
	PublicationCount int                `bson:"publication_count" json:"publication_count"`
	Created          bool               `bson:"created" json:"created"`
	CalculatedAt     time.Time          `bson:"calculated_at" json:"calculated_at"`
}

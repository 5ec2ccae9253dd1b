package models

import "time"

type Course struct {
	ID          string    `gorm:"column:id;size:36;primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;size:36;index" json:"userId"`
	CourseName  string    `gorm:"column:course_name;size:255" json:"courseName"`
	Platform    string    `gorm:"column:platform;size:64" json:"platform"`
	Duration    string    `gorm:"column:duration;size:16" json:"duration"`
	ScoreEarned string    `gorm:"column:score_earned;size:16" json:"scoreEarned"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Course) TableName() string { return "courses" }

// UserInfo is the free-text "additional information" section filed
// alongside courses.
type UserInfo struct {
	UserID        string    `gorm:"column:user_id;size:36;primaryKey" json:"user_id"`
	Family        string    `gorm:"column:family;type:text" json:"family"`
	Reference     string    `gorm:"column:reference;type:text" json:"reference"`
	AnyOtherInfo  string    `gorm:"column:any_other_info;type:text" json:"any_other_info"`
	AwardsDetails string    `gorm:"column:awards_details;type:text" json:"awards_details"`
	NoOfAwards    int       `gorm:"column:no_of_awards" json:"no_of_awards"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserInfo) TableName() string { return "user_info" }

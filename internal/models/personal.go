package models

import "time"

// Personal holds the applicant's personal section. Photo is kept in-row
// unless an object store is configured, in which case PhotoURL is set.
type Personal struct {
	UserID               string    `gorm:"column:user_id;size:36;primaryKey" json:"userId"`
	FullName             string    `gorm:"column:full_name;size:255" json:"fullName"`
	ReferenceNumber      string    `gorm:"column:reference_number;size:64" json:"referenceNumber"`
	DateOfBirth          string    `gorm:"column:date_of_birth;size:10" json:"dateOfBirth"`
	Age                  int       `gorm:"column:age" json:"age"`
	Gender               string    `gorm:"column:gender;size:16" json:"gender"`
	CommunicationAddress string    `gorm:"column:communication_address;type:text" json:"communicationAddress"`
	PermanentAddress     string    `gorm:"column:permanent_address;type:text" json:"permanentAddress"`
	Religion             string    `gorm:"column:religion;size:64" json:"religion"`
	Community            string    `gorm:"column:community;size:64" json:"community"`
	Caste                string    `gorm:"column:caste;size:64" json:"caste"`
	Email                string    `gorm:"column:email;size:255" json:"email"`
	MobileNumber         string    `gorm:"column:mobile_number;size:20" json:"mobileNumber"`
	Post                 string    `gorm:"column:post;size:128" json:"post"`
	Department           string    `gorm:"column:department;size:128" json:"department"`
	AppliedDate          string    `gorm:"column:applied_date;size:10" json:"appliedDate"`
	Photo                []byte    `gorm:"column:photo" json:"photo,omitempty"` // base64 in JSON
	PhotoURL             string    `gorm:"column:photo_url;size:512" json:"photoUrl,omitempty"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Personal) TableName() string { return "personal" }

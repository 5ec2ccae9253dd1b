package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is an applicant account.
type User struct {
	ID            string    `gorm:"column:id;size:36;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;size:255" json:"name"`
	Email         string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	PasswordHash  string    `gorm:"column:password_hash;size:255" json:"-"`
	Role          UserRole  `gorm:"column:role;size:16;default:user" json:"role"`
	FormSubmitted bool      `gorm:"column:form_submitted" json:"formsubmitted"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactSubmission is an inquiry from the public contact form. Date is the
// submission timestamp (RFC 3339), set once and never updated.
type ContactSubmission struct {
	ID      string `json:"id" gorm:"primaryKey;size:40"`
	Name    string `json:"name" gorm:"size:100;not null"`
	Email   string `json:"email" gorm:"size:100;not null"`
	Phone   string `json:"phone" gorm:"size:20;not null"`
	Branch  string `json:"branch" gorm:"size:100;not null"` // copied from the submitter's selection
	Message string `json:"message" gorm:"size:2000"`
	Date    string `json:"date" gorm:"size:40"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

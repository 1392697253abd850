package models

import (
	"time"

	"gorm.io/gorm"
)

type Trainer struct {
	ID               string `json:"id" gorm:"primaryKey;size:30"`
	Name             string `json:"name" gorm:"size:100;not null"`
	Specialization   string `json:"specialization" gorm:"size:100;not null"`
	Experience       string `json:"experience" gorm:"size:100"` // free text, e.g. "8+ years"
	PhotoURL         string `json:"photoUrl" gorm:"size:255"`
	Branch           string `json:"branch" gorm:"size:100"` // free text, may name a branch that does not exist
	Description      string `json:"description" gorm:"size:500"`
	InstagramProfile string `json:"instagramProfile" gorm:"size:255"`
	ContactNumber    string `json:"contactNumber" gorm:"size:20"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Branch of the gym. Members and trainers reference a branch by its name, not
// by id, and the reference is not enforced; whatever was stored is displayed.
type Branch struct {
	ID           string `json:"id" gorm:"primaryKey;size:30"`
	Name         string `json:"name" gorm:"size:100;not null"`
	Location     string `json:"location" gorm:"size:500;not null"` // address or embed URL
	ContactPhone string `json:"contactPhone" gorm:"size:50"`
	ContactEmail string `json:"contactEmail" gorm:"size:100"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Package is a membership plan (Monthly, Quarterly, ...). DurationDays drives
// the plan expiry math for members subscribed to it.
type Package struct {
	ID           string   `json:"id" gorm:"primaryKey;size:30"`
	Name         string   `json:"name" gorm:"size:100;not null"`
	Price        float64  `json:"price" gorm:"not null"`
	DurationDays int      `json:"durationDays"`
	Benefits     []string `json:"benefits" gorm:"serializer:json"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

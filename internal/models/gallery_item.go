package models

import (
	"time"

	"gorm.io/gorm"
)

type GalleryCategory string

const (
	CategoryEquipment      GalleryCategory = "Equipment"
	CategoryGroupClasses   GalleryCategory = "Group Classes"
	CategoryTransformation GalleryCategory = "Transformation"
	CategoryOther          GalleryCategory = "Other"
)

// ValidGalleryCategory reports whether c is one of the known categories.
// Unknown values fall back to Other instead of being rejected.
func ValidGalleryCategory(c GalleryCategory) bool {
	switch c {
	case CategoryEquipment, CategoryGroupClasses, CategoryTransformation, CategoryOther:
		return true
	}
	return false
}

type GalleryItem struct {
	ID       string          `json:"id" gorm:"primaryKey;size:30"`
	Category GalleryCategory `json:"category" gorm:"size:30"`
	ImageURL string          `json:"imageUrl" gorm:"size:500;not null"`
	Caption  string          `json:"caption" gorm:"size:255"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

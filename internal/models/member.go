package models

import (
	"time"

	"gorm.io/gorm"
)

// Member ids look like GYM-VA-1234: a fixed prefix, a two letter branch code
// and a four digit random suffix. The id is the public identifier printed on
// the membership card, so it is the primary key as-is.
type Member struct {
	ID               string `json:"id" gorm:"primaryKey;size:20"`
	FullName         string `json:"fullName" gorm:"size:100;not null"`
	MobileNumber     string `json:"mobileNumber" gorm:"size:20;not null"`
	Email            string `json:"email" gorm:"size:100"`
	DateOfBirth      string `json:"dateOfBirth" gorm:"size:10"`
	BranchName       string `json:"branchName" gorm:"size:100"`
	RegistrationDate string `json:"registrationDate" gorm:"size:10"` // set once at creation

	// Plan (package) subscription
	CurrentPlan    string  `json:"currentPlan" gorm:"size:100"`
	PlanStartDate  string  `json:"planStartDate" gorm:"size:10"`
	PlanExpiryDate string  `json:"planExpiryDate" gorm:"size:10"`
	PlanFeePaid    bool    `json:"planFeePaid"`
	PlanFee        float64 `json:"planFee"`

	// Annual membership fee, independent of the plan fee
	AnnualFeePaid       bool    `json:"annualFeePaid"`
	FeeValidityDate     string  `json:"feeValidityDate" gorm:"size:10"` // payment date
	AnnualFeeExpiryDate string  `json:"annualFeeExpiryDate" gorm:"size:10"`
	AnnualFeeAmount     float64 `json:"annualFeeAmount"`

	QRCodeURL       string `json:"qrCodeUrl" gorm:"size:255"`
	ProfilePhotoURL string `json:"profilePhotoUrl" gorm:"size:255"`

	// Derived on every read, never persisted. Negative means expired.
	RemainingDays int `json:"remainingDays" gorm:"-"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

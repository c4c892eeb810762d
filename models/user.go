package models

import "gorm.io/gorm"

// User is a general-event (NITRUTSAV) registration. One row per
// participant, created at submission and mutated only to flip the
// verified flag.
type User struct {
	gorm.Model
	FirebaseUID        string `json:"firebaseUid" gorm:"unique;size:128"`
	Name               string `json:"name"`
	Email              string `json:"email" gorm:"unique"`
	Phone              string `json:"phone" gorm:"size:10"`
	Gender             Gender `json:"gender"`
	Institute          string `json:"institute"`
	University         string `json:"university"`
	RollNumber         string `json:"rollNumber"`
	IDCard             string `json:"idCard"`
	ReferralCode       string `json:"referralCode"`
	Permission         string `json:"permission"`
	Undertaking        string `json:"undertaking"`
	IsNitrStudent      bool   `json:"isNitrStudent"`
	WantsAccommodation bool   `json:"wantsAccommodation"`
	IsVerified         bool   `json:"isVerified"`
}

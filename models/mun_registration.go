package models

import (
	"time"

	"gorm.io/gorm"
)

// MunRegistration is one MUN participant. Moot Court team rows share
// a TeamID with exactly one leader-flagged row; individual entries
// get their own TeamID used purely as a payment-grouping key.
//
// FirebaseUID is nullable: teammates are registered by their leader
// and get their UID attached in place on first sign-in.
type MunRegistration struct {
	gorm.Model
	FirebaseUID  *string `json:"firebaseUid" gorm:"unique;size:128"`
	TeamID       string  `json:"teamId" gorm:"size:36;index"`
	IsTeamLeader bool    `json:"isTeamLeader"`

	Name        string    `json:"name"`
	Gender      Gender    `json:"gender"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Phone       string    `json:"phone" gorm:"size:10"`
	Email       string    `json:"email" gorm:"unique"`

	StudentType StudentType `json:"studentType"`
	Institute   string      `json:"institute"`
	University  string      `json:"university"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	RollNumber  string      `json:"rollNumber"`
	IDCard      string      `json:"idCard"`

	CommitteeChoice       Committee `json:"committeeChoice"`
	HasParticipatedBefore bool      `json:"hasParticipatedBefore"`

	EmergencyContactName  string     `json:"emergencyContactName"`
	EmergencyContactPhone string     `json:"emergencyContactPhone" gorm:"size:10"`
	BloodGroup            BloodGroup `json:"bloodGroup"`

	AgreedToTerms bool `json:"agreedToTerms"`
	IsNitrStudent bool `json:"isNitrStudent"`
	IsVerified    bool `json:"isVerified"`
}

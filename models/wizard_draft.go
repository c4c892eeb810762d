package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WizardDraft persists a participant's in-progress multi-step MUN
// registration so the wizard survives the sign-in redirect. Data
// holds the serialized draft (leader/teammate forms); Version detects
// drafts written by an incompatible deployment, which are discarded
// on load rather than misapplied.
type WizardDraft struct {
	gorm.Model
	FirebaseUID string         `json:"firebaseUid" gorm:"unique;size:128"`
	Version     int            `json:"version"`
	Step        string         `json:"step"`
	IsTeam      bool           `json:"isTeam"`
	Data        datatypes.JSON `json:"data"`
}

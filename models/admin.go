package models

import "gorm.io/gorm"

// Admin gates access to the admin portal. Accounts start unapproved.
type Admin struct {
	gorm.Model
	Email        string `json:"email" gorm:"unique"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsApproved   bool   `json:"isApproved"`
}

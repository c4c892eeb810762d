package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nitrutsav-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MunRegistration{},
		&models.Transaction{},
		&models.Admin{},
		&models.WizardDraft{},
	))
	return db
}

func validRegistrationInput(email string) RegistrationInput {
	return RegistrationInput{
		Name:        "Asha Mohanty",
		Email:       email,
		Phone:       "9876543210",
		Gender:      models.GenderFemale,
		Institute:   "KIIT University",
		University:  "KIIT University",
		RollNumber:  "21CS1234",
		IDCard:      "https://cdn.example.com/id/21cs1234.png",
		Permission:  "https://cdn.example.com/perm/21cs1234.pdf",
		Undertaking: "https://cdn.example.com/under/21cs1234.pdf",
	}
}

func validMunInput(email string) MunRegistrationInput {
	return MunRegistrationInput{
		Name:                  "Rohan Das",
		Gender:                models.GenderMale,
		DateOfBirth:           time.Date(2003, time.March, 14, 0, 0, 0, 0, time.UTC),
		Phone:                 "9876543210",
		Email:                 email,
		StudentType:           models.StudentTypeCollege,
		Institute:             "KIIT University",
		University:            "KIIT University",
		City:                  "Bhubaneswar",
		State:                 "Odisha",
		RollNumber:            "21CS5678",
		IDCard:                "https://cdn.example.com/id/21cs5678.png",
		CommitteeChoice:       models.CommitteeUNHRC,
		HasParticipatedBefore: false,
		EmergencyContactName:  "Suresh Das",
		EmergencyContactPhone: "9123456780",
		AgreedToTerms:         true,
	}
}

func zeroTime() time.Time {
	return time.Time{}
}

func mustCountMunRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.MunRegistration{}).Count(&count).Error)
	return count
}

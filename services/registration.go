package services

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"nitrutsav-backend/models"
)

// emailRegisteredAnywhere checks both registration tables. MUN
// registration counts as general-event registration, so an email in
// either table blocks a new registration in both. The unique
// constraints remain the authoritative guard against races; this
// check exists to return an error naming the email.
func emailRegisteredAnywhere(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check users table")
	}
	if count > 0 {
		return true, nil
	}
	if err := db.Model(&models.MunRegistration{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check mun registrations table")
	}
	return count > 0, nil
}

// translateCreateError maps a constraint violation on insert to a
// duplicate error naming the email; anything else is internal.
func translateCreateError(err error, email string) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return NewDuplicateError(email)
	}
	return NewInternalError(errors.Wrap(err, "create registration"))
}

// RegisterUser persists a general-event registration. NIT Rourkela
// students are verified immediately since no fee is due from them.
func RegisterUser(db *gorm.DB, in RegistrationInput, firebaseUID string) (*models.User, error) {
	if fieldErrs := ValidateRegistration(in); len(fieldErrs) > 0 {
		return nil, NewValidationError(fieldErrs)
	}
	if err := CheckInstituteAllowed(in.Institute, in.University); err != nil {
		return nil, err
	}

	exists, err := emailRegisteredAnywhere(db, in.Email)
	if err != nil {
		return nil, NewInternalError(err)
	}
	if exists {
		return nil, NewDuplicateError(in.Email)
	}

	user := models.User{
		FirebaseUID:        firebaseUID,
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Gender:             in.Gender,
		Institute:          in.Institute,
		University:         in.University,
		RollNumber:         in.RollNumber,
		IDCard:             in.IDCard,
		ReferralCode:       in.ReferralCode,
		Permission:         in.Permission,
		Undertaking:        in.Undertaking,
		IsNitrStudent:      in.IsNitrStudent,
		WantsAccommodation: in.WantsAccommodation,
		IsVerified:         in.IsNitrStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, translateCreateError(err, in.Email)
	}
	return &user, nil
}

// GetUserByFirebaseUID returns the general-event registration for the
// identity, or nil when none exists.
func GetUserByFirebaseUID(db *gorm.DB, firebaseUID string) (*models.User, error) {
	var user models.User
	err := db.Where("firebase_uid = ?", firebaseUID).First(&user).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewInternalError(errors.Wrap(err, "look up user"))
	}
	return &user, nil
}

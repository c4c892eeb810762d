package services

import (
	"fmt"
	"regexp"
	"time"

	"nitrutsav-backend/models"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern = regexp.MustCompile(`(?i)^[a-zA-Z0-9](?:\.?[a-zA-Z0-9])*@g(?:oogle)?mail\.com$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// RegistrationInput is a candidate general-event registration.
type RegistrationInput struct {
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	Gender             models.Gender `json:"gender"`
	Institute          string        `json:"institute"`
	University         string        `json:"university"`
	RollNumber         string        `json:"rollNumber"`
	IDCard             string        `json:"idCard"`
	Permission         string        `json:"permission"`
	Undertaking        string        `json:"undertaking"`
	ReferralCode       string        `json:"referralCode"`
	IsNitrStudent      bool          `json:"isNitrStudent"`
	WantsAccommodation bool          `json:"wantsAccommodation"`
}

// MunRegistrationInput is a candidate MUN registration for one
// participant (individual, or one member of a Moot Court team).
type MunRegistrationInput struct {
	Name        string        `json:"name"`
	Gender      models.Gender `json:"gender"`
	DateOfBirth time.Time     `json:"dateOfBirth"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`

	StudentType models.StudentType `json:"studentType"`
	Institute   string             `json:"institute"`
	University  string             `json:"university"`
	City        string             `json:"city"`
	State       string             `json:"state"`
	RollNumber  string             `json:"rollNumber"`
	IDCard      string             `json:"idCard"`

	CommitteeChoice       models.Committee `json:"committeeChoice"`
	HasParticipatedBefore bool             `json:"hasParticipatedBefore"`

	EmergencyContactName  string            `json:"emergencyContactName"`
	EmergencyContactPhone string            `json:"emergencyContactPhone"`
	BloodGroup            models.BloodGroup `json:"bloodGroup"`

	AgreedToTerms bool `json:"agreedToTerms"`
	IsNitrStudent bool `json:"isNitrStudent"`
}

func requiredMsg(field string) string {
	return fmt.Sprintf("%s is required", field)
}

// ValidateRegistration checks a general-event payload and returns the
// field-keyed messages for every violated rule. An empty slice means
// the payload passed.
func ValidateRegistration(in RegistrationInput) []FieldError {
	var errs []FieldError

	if in.Name == "" {
		errs = append(errs, FieldError{"name", requiredMsg("Name")})
	} else if !namePattern.MatchString(in.Name) {
		errs = append(errs, FieldError{"name", "Invalid name"})
	}
	if !emailPattern.MatchString(in.Email) {
		errs = append(errs, FieldError{"email", "Invalid email. Please use Gmail"})
	}
	if !phonePattern.MatchString(in.Phone) {
		errs = append(errs, FieldError{"phone", "Phone must be 10 digits"})
	}
	if !in.Gender.IsValid() {
		errs = append(errs, FieldError{"gender", "Gender is required"})
	}
	if in.Institute == "" {
		errs = append(errs, FieldError{"institute", requiredMsg("Institute name")})
	}
	if in.University == "" {
		errs = append(errs, FieldError{"university", requiredMsg("University name")})
	}
	if in.RollNumber == "" {
		errs = append(errs, FieldError{"rollNumber", requiredMsg("Roll number")})
	}
	if in.IDCard == "" {
		errs = append(errs, FieldError{"idCard", requiredMsg("ID card upload")})
	}
	if in.Permission == "" {
		errs = append(errs, FieldError{"permission", requiredMsg("Permission letter upload")})
	}
	if in.Undertaking == "" {
		errs = append(errs, FieldError{"undertaking", requiredMsg("Undertaking upload")})
	}

	return errs
}

// ValidateMunRegistration checks one MUN payload. Cross-field rules:
// the emergency contact must differ from the participant's own phone,
// and school students are barred from Moot Court and the overnight
// crisis committees.
func ValidateMunRegistration(in MunRegistrationInput) []FieldError {
	var errs []FieldError

	if in.Name == "" {
		errs = append(errs, FieldError{"name", requiredMsg("Name")})
	} else if !namePattern.MatchString(in.Name) {
		errs = append(errs, FieldError{"name", "Invalid name"})
	}
	if !in.Gender.IsValid() {
		errs = append(errs, FieldError{"gender", "Gender is required"})
	}
	if in.DateOfBirth.IsZero() {
		errs = append(errs, FieldError{"dateOfBirth", requiredMsg("Date of birth")})
	}
	if !phonePattern.MatchString(in.Phone) {
		errs = append(errs, FieldError{"phone", "Phone must be 10 digits"})
	}
	if !emailPattern.MatchString(in.Email) {
		errs = append(errs, FieldError{"email", "Invalid email. Please use Gmail"})
	}
	if !in.StudentType.IsValid() {
		errs = append(errs, FieldError{"studentType", "Student type is required"})
	}
	if in.Institute == "" {
		errs = append(errs, FieldError{"institute", requiredMsg("Institute name")})
	}
	if in.University == "" {
		errs = append(errs, FieldError{"university", requiredMsg("University/Board")})
	}
	if in.City == "" {
		errs = append(errs, FieldError{"city", requiredMsg("City")})
	}
	if in.State == "" {
		errs = append(errs, FieldError{"state", requiredMsg("State")})
	}
	if in.RollNumber == "" {
		errs = append(errs, FieldError{"rollNumber", requiredMsg("Roll number")})
	}
	if in.IDCard == "" {
		errs = append(errs, FieldError{"idCard", requiredMsg("ID card upload")})
	}
	if !in.CommitteeChoice.IsValid() {
		errs = append(errs, FieldError{"committeeChoice", "Committee choice is required"})
	} else if in.StudentType == models.StudentTypeSchool && in.CommitteeChoice.IsSchoolRestricted() {
		errs = append(errs, FieldError{
			"committeeChoice",
			"School students can only participate in UNHRC, DISEC, AIPPM, ECOSOC, and IP committees",
		})
	}
	if in.EmergencyContactName == "" {
		errs = append(errs, FieldError{"emergencyContactName", requiredMsg("Emergency contact name")})
	}
	if !phonePattern.MatchString(in.EmergencyContactPhone) {
		errs = append(errs, FieldError{"emergencyContactPhone", "Emergency contact phone must be 10 digits"})
	} else if in.EmergencyContactPhone == in.Phone {
		errs = append(errs, FieldError{
			"emergencyContactPhone",
			"Emergency contact number must be different from your phone number",
		})
	}
	if in.BloodGroup != "" && !in.BloodGroup.IsValid() {
		errs = append(errs, FieldError{"bloodGroup", "Invalid blood group"})
	}
	if !in.AgreedToTerms {
		errs = append(errs, FieldError{"agreedToTerms", "You must agree to terms and conditions"})
	}

	return errs
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nitrutsav-backend/models"
)

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateMunRegistrationPasses(t *testing.T) {
	assert.Empty(t, ValidateMunRegistration(validMunInput("rohan.das@gmail.com")))
}

func TestValidateMunRegistrationNamesFailingField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*MunRegistrationInput)
		field  string
	}{
		{"empty name", func(in *MunRegistrationInput) { in.Name = "" }, "name"},
		{"digits in name", func(in *MunRegistrationInput) { in.Name = "R0han" }, "name"},
		{"missing gender", func(in *MunRegistrationInput) { in.Gender = "" }, "gender"},
		{"missing dob", func(in *MunRegistrationInput) { in.DateOfBirth = zeroTime() }, "dateOfBirth"},
		{"short phone", func(in *MunRegistrationInput) { in.Phone = "12345" }, "phone"},
		{"non-gmail email", func(in *MunRegistrationInput) { in.Email = "rohan@yahoo.com" }, "email"},
		{"missing student type", func(in *MunRegistrationInput) { in.StudentType = "" }, "studentType"},
		{"missing institute", func(in *MunRegistrationInput) { in.Institute = "" }, "institute"},
		{"missing university", func(in *MunRegistrationInput) { in.University = "" }, "university"},
		{"missing city", func(in *MunRegistrationInput) { in.City = "" }, "city"},
		{"missing state", func(in *MunRegistrationInput) { in.State = "" }, "state"},
		{"missing roll number", func(in *MunRegistrationInput) { in.RollNumber = "" }, "rollNumber"},
		{"missing id card", func(in *MunRegistrationInput) { in.IDCard = "" }, "idCard"},
		{"bad committee", func(in *MunRegistrationInput) { in.CommitteeChoice = "SENATE" }, "committeeChoice"},
		{"missing emergency name", func(in *MunRegistrationInput) { in.EmergencyContactName = "" }, "emergencyContactName"},
		{"bad emergency phone", func(in *MunRegistrationInput) { in.EmergencyContactPhone = "abc" }, "emergencyContactPhone"},
		{"bad blood group", func(in *MunRegistrationInput) { in.BloodGroup = "C_POSITIVE" }, "bloodGroup"},
		{"terms not agreed", func(in *MunRegistrationInput) { in.AgreedToTerms = false }, "agreedToTerms"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validMunInput("rohan.das@gmail.com")
			tc.mutate(&in)
			errs := ValidateMunRegistration(in)
			require.NotEmpty(t, errs)
			assert.Contains(t, fieldNames(errs), tc.field)
		})
	}
}

func TestGmailPatternAcceptsGooglemail(t *testing.T) {
	in := validMunInput("rohan.das@googlemail.com")
	assert.Empty(t, ValidateMunRegistration(in))
}

func TestEmergencyContactMustDifferFromPhone(t *testing.T) {
	in := validMunInput("rohan.das@gmail.com")
	in.EmergencyContactPhone = in.Phone
	errs := ValidateMunRegistration(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "emergencyContactPhone", errs[0].Field)
	assert.Contains(t, errs[0].Message, "different from your phone number")
}

func TestSchoolStudentsBarredFromRestrictedCommittees(t *testing.T) {
	restricted := []models.Committee{
		models.CommitteeMootCourt,
		models.CommitteeUNSCOvernightCrisis,
		models.CommitteeAIPPMOvernightCrisis,
	}
	for _, committee := range restricted {
		in := validMunInput("school.kid@gmail.com")
		in.StudentType = models.StudentTypeSchool
		in.CommitteeChoice = committee
		errs := ValidateMunRegistration(in)
		require.NotEmpty(t, errs, "committee %s", committee)
		assert.Contains(t, fieldNames(errs), "committeeChoice")
	}

	// The same committees are open to college students.
	for _, committee := range restricted {
		in := validMunInput("college.kid@gmail.com")
		in.CommitteeChoice = committee
		assert.Empty(t, ValidateMunRegistration(in), "committee %s", committee)
	}

	// School students can still join the open committees.
	in := validMunInput("school.kid@gmail.com")
	in.StudentType = models.StudentTypeSchool
	in.CommitteeChoice = models.CommitteeECOSOC
	assert.Empty(t, ValidateMunRegistration(in))
}

func TestValidateRegistrationNamesFailingField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegistrationInput)
		field  string
	}{
		{"empty name", func(in *RegistrationInput) { in.Name = "" }, "name"},
		{"bad email", func(in *RegistrationInput) { in.Email = "someone@outlook.com" }, "email"},
		{"bad phone", func(in *RegistrationInput) { in.Phone = "98765" }, "phone"},
		{"missing gender", func(in *RegistrationInput) { in.Gender = "OTHER" }, "gender"},
		{"missing permission", func(in *RegistrationInput) { in.Permission = "" }, "permission"},
		{"missing undertaking", func(in *RegistrationInput) { in.Undertaking = "" }, "undertaking"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegistrationInput("asha.m@gmail.com")
			tc.mutate(&in)
			errs := ValidateRegistration(in)
			require.NotEmpty(t, errs)
			assert.Contains(t, fieldNames(errs), tc.field)
		})
	}
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nitrutsav-backend/config"
	"nitrutsav-backend/models"
)

func TestMunRegistrationFee(t *testing.T) {
	college := config.MunFeeCollege
	school := config.MunFeeSchool

	assert.Equal(t, college, MunRegistrationFee(models.StudentTypeCollege, models.CommitteeUNHRC, false))
	assert.Equal(t, school, MunRegistrationFee(models.StudentTypeSchool, models.CommitteeECOSOC, false))

	// Moot Court is a three-person team: base fee tripled.
	assert.Equal(t, college*3, MunRegistrationFee(models.StudentTypeCollege, models.CommitteeMootCourt, false))
	assert.Equal(t, school*3, MunRegistrationFee(models.StudentTypeSchool, models.CommitteeMootCourt, false))

	// NIT Rourkela students are exempt regardless of committee.
	assert.Equal(t, 0, MunRegistrationFee(models.StudentTypeCollege, models.CommitteeUNHRC, true))
	assert.Equal(t, 0, MunRegistrationFee(models.StudentTypeCollege, models.CommitteeMootCourt, true))
}

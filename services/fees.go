package services

import (
	"nitrutsav-backend/config"
	"nitrutsav-backend/models"
)

// MunRegistrationFee computes the amount owed for a MUN registration.
// Base fee depends on student type, tripled for a three-person Moot
// Court team. NIT Rourkela students are exempt entirely.
func MunRegistrationFee(studentType models.StudentType, committee models.Committee, isNitrStudent bool) int {
	if isNitrStudent {
		return 0
	}
	base := config.MunFeeCollege
	if studentType == models.StudentTypeSchool {
		base = config.MunFeeSchool
	}
	if committee.IsTeamCommittee() {
		return base * 3
	}
	return base
}

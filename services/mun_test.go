package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nitrutsav-backend/models"
)

func validTeamInputs() (leader, teammate1, teammate2 MunRegistrationInput) {
	leader = validMunInput("leader@gmail.com")
	leader.CommitteeChoice = models.CommitteeMootCourt

	teammate1 = validMunInput("mate.one@gmail.com")
	teammate1.Name = "Priya Sahu"
	teammate1.Phone = "9000000001"
	teammate1.EmergencyContactPhone = "9000000011"

	teammate2 = validMunInput("mate.two@gmail.com")
	teammate2.Name = "Arjun Patel"
	teammate2.Phone = "9000000002"
	teammate2.EmergencyContactPhone = "9000000022"
	return leader, teammate1, teammate2
}

func TestRegisterMunIndividual(t *testing.T) {
	db := newTestDB(t)

	result, err := RegisterMunIndividual(db, validMunInput("solo@gmail.com"), "uid-solo")
	require.NoError(t, err)
	assert.NotZero(t, result.UserID)
	assert.NotEmpty(t, result.TeamID, "individuals still get a payment-grouping team id")

	var reg models.MunRegistration
	require.NoError(t, db.First(&reg, result.UserID).Error)
	assert.False(t, reg.IsTeamLeader)
	assert.False(t, reg.IsVerified)
	require.NotNil(t, reg.FirebaseUID)
	assert.Equal(t, "uid-solo", *reg.FirebaseUID)
}

func TestRegisterMunIndividualNitrAutoVerified(t *testing.T) {
	db := newTestDB(t)

	in := validMunInput("nitr.solo@gmail.com")
	in.Institute = "National Institute of Technology Rourkela"
	in.University = "National Institute of Technology Rourkela"
	in.IsNitrStudent = true

	result, err := RegisterMunIndividual(db, in, "uid-nitr-solo")
	require.NoError(t, err)

	var reg models.MunRegistration
	require.NoError(t, db.First(&reg, result.UserID).Error)
	assert.True(t, reg.IsVerified)
}

func TestRegisterMunTeam(t *testing.T) {
	db := newTestDB(t)

	leader, teammate1, teammate2 := validTeamInputs()
	result, err := RegisterMunTeam(db, leader, teammate1, teammate2, "uid-leader")
	require.NoError(t, err)
	assert.NotEmpty(t, result.TeamID)

	members, err := GetTeamMembers(db, result.TeamID)
	require.NoError(t, err)
	require.Len(t, members, 3)

	leaders := 0
	for _, m := range members {
		assert.Equal(t, result.TeamID, m.TeamID)
		assert.Equal(t, models.CommitteeMootCourt, m.CommitteeChoice)
		if m.IsTeamLeader {
			leaders++
			require.NotNil(t, m.FirebaseUID)
			assert.Equal(t, "uid-leader", *m.FirebaseUID)
		} else {
			assert.Nil(t, m.FirebaseUID, "teammates have no identity until first sign-in")
		}
	}
	assert.Equal(t, 1, leaders, "exactly one leader-flagged row")
}

func TestRegisterMunTeamMismatchedNitrLeavesNoRows(t *testing.T) {
	db := newTestDB(t)

	leader, teammate1, teammate2 := validTeamInputs()
	leader.IsNitrStudent = true
	leader.Institute = "National Institute of Technology Rourkela"
	leader.University = "National Institute of Technology Rourkela"

	_, err := RegisterMunTeam(db, leader, teammate1, teammate2, "uid-leader")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "All teammates must be from NIT Rourkela.")
	assert.Zero(t, mustCountMunRows(t, db), "a failed attempt leaves zero new rows")

	// Opposite direction: non-NITR leader, NITR teammate.
	leader2, teammate3, teammate4 := validTeamInputs()
	teammate3.IsNitrStudent = true

	_, err = RegisterMunTeam(db, leader2, teammate3, teammate4, "uid-leader-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No teammates can be from NIT Rourkela.")
	assert.Zero(t, mustCountMunRows(t, db))
}

func TestRegisterMunTeamDuplicateEmailNamesFirstCollision(t *testing.T) {
	db := newTestDB(t)

	// teammate2's email already sits in the general table.
	_, err := RegisterUser(db, validRegistrationInput("mate.two@gmail.com"), "uid-prior")
	require.NoError(t, err)

	leader, teammate1, teammate2 := validTeamInputs()
	_, err = RegisterMunTeam(db, leader, teammate1, teammate2, "uid-leader")

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindDuplicate, svcErr.Kind)
	assert.Contains(t, svcErr.Message, "mate.two@gmail.com")
	assert.Zero(t, mustCountMunRows(t, db))
}

func TestRegisterMunTeamSchoolTeammateRejected(t *testing.T) {
	db := newTestDB(t)

	// Moot Court is the leader's committee; a school teammate cannot
	// join it no matter what their own form said.
	leader, teammate1, teammate2 := validTeamInputs()
	teammate1.StudentType = models.StudentTypeSchool
	teammate1.CommitteeChoice = models.CommitteeECOSOC

	_, err := RegisterMunTeam(db, leader, teammate1, teammate2, "uid-leader")
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)
	assert.Contains(t, fieldNames(svcErr.Fields), "committeeChoice")
	assert.Zero(t, mustCountMunRows(t, db))
}

func TestCheckMunRegistrationAttachesTeammateUID(t *testing.T) {
	db := newTestDB(t)

	leader, teammate1, teammate2 := validTeamInputs()
	result, err := RegisterMunTeam(db, leader, teammate1, teammate2, "uid-leader")
	require.NoError(t, err)

	// Teammate 1 signs in for the first time: matched by email, uid
	// attached in place.
	check, err := CheckMunRegistration(db, "uid-mate-one", "mate.one@gmail.com")
	require.NoError(t, err)
	assert.True(t, check.IsRegistered)
	assert.True(t, check.IsTeamMember)
	assert.False(t, check.IsTeamLeader)
	assert.Equal(t, result.TeamID, check.TeamID)
	assert.Equal(t, "Rohan Das", check.TeamLeaderName)

	var reg models.MunRegistration
	require.NoError(t, db.Where("email = ?", "mate.one@gmail.com").First(&reg).Error)
	require.NotNil(t, reg.FirebaseUID)
	assert.Equal(t, "uid-mate-one", *reg.FirebaseUID)
}

func TestCheckMunRegistrationUnknownIdentity(t *testing.T) {
	db := newTestDB(t)

	check, err := CheckMunRegistration(db, "uid-nobody", "nobody@gmail.com")
	require.NoError(t, err)
	assert.False(t, check.IsRegistered)
}

func TestCheckCrossRegistration(t *testing.T) {
	db := newTestDB(t)

	// MUN registrant: counts for both events.
	_, err := RegisterMunIndividual(db, validMunInput("mun.only@gmail.com"), "uid-mun")
	require.NoError(t, err)

	status, err := CheckCrossRegistration(db, "uid-mun")
	require.NoError(t, err)
	assert.True(t, status.IsMunRegistered)
	assert.True(t, status.IsNitrutsavRegistered, "MUN registration counts as NITRUTSAV registration")
	assert.Equal(t, "MUN", status.RegistrationType)

	// General-only registrant.
	_, err = RegisterUser(db, validRegistrationInput("general.only@gmail.com"), "uid-general")
	require.NoError(t, err)

	status, err = CheckCrossRegistration(db, "uid-general")
	require.NoError(t, err)
	assert.False(t, status.IsMunRegistered)
	assert.True(t, status.IsNitrutsavRegistered)
	assert.Equal(t, "NITRUTSAV", status.RegistrationType)

	// Unknown identity: new registrant.
	status, err = CheckCrossRegistration(db, "uid-unknown")
	require.NoError(t, err)
	assert.False(t, status.IsMunRegistered)
	assert.False(t, status.IsNitrutsavRegistered)
	assert.Empty(t, status.RegistrationType)
}

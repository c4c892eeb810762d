package services

import (
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"nitrutsav-backend/models"
)

// MunUserStatus is a MUN registration joined with its payment state.
type MunUserStatus struct {
	models.MunRegistration
	IsPaymentVerified bool `json:"isPaymentVerified"`
}

// MunRegistrationResult identifies a newly created individual
// registration. TeamID is generated even without teammates; it is the
// payment-grouping key.
type MunRegistrationResult struct {
	UserID uint   `json:"userId"`
	TeamID string `json:"teamId"`
}

// TeamRegistrationResult identifies the three rows of a newly created
// Moot Court team.
type TeamRegistrationResult struct {
	TeamID       string `json:"teamId"`
	TeamLeaderID uint   `json:"teamLeaderId"`
	Teammate1ID  uint   `json:"teammate1Id"`
	Teammate2ID  uint   `json:"teammate2Id"`
}

func munInputToModel(in MunRegistrationInput, firebaseUID *string, teamID string, isLeader bool) models.MunRegistration {
	return models.MunRegistration{
		FirebaseUID:           firebaseUID,
		TeamID:                teamID,
		IsTeamLeader:          isLeader,
		Name:                  in.Name,
		Gender:                in.Gender,
		DateOfBirth:           in.DateOfBirth,
		Phone:                 in.Phone,
		Email:                 in.Email,
		StudentType:           in.StudentType,
		Institute:             in.Institute,
		University:            in.University,
		City:                  in.City,
		State:                 in.State,
		RollNumber:            in.RollNumber,
		IDCard:                in.IDCard,
		CommitteeChoice:       in.CommitteeChoice,
		HasParticipatedBefore: in.HasParticipatedBefore,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		BloodGroup:            in.BloodGroup,
		AgreedToTerms:         in.AgreedToTerms,
		IsNitrStudent:         in.IsNitrStudent,
		IsVerified:            in.IsNitrStudent, // fee-exempt, verified at registration
	}
}

// RegisterMunIndividual persists a single non-team MUN registration.
func RegisterMunIndividual(db *gorm.DB, in MunRegistrationInput, firebaseUID string) (*MunRegistrationResult, error) {
	if fieldErrs := ValidateMunRegistration(in); len(fieldErrs) > 0 {
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

	teamID := uuid.NewString()
	row := munInputToModel(in, &firebaseUID, teamID, false)
	if err := db.Create(&row).Error; err != nil {
		return nil, translateCreateError(err, in.Email)
	}
	return &MunRegistrationResult{UserID: row.ID, TeamID: teamID}, nil
}

// RegisterMunTeam persists a three-person Moot Court team. Teammates
// inherit the leader's committee choice, every member must pass
// validation and institute screening, and all three must share the
// leader's NITR status. The three inserts run in one transaction so a
// failure leaves no orphaned rows.
func RegisterMunTeam(db *gorm.DB, leader, teammate1, teammate2 MunRegistrationInput, leaderFirebaseUID string) (*TeamRegistrationResult, error) {
	teammate1.CommitteeChoice = leader.CommitteeChoice
	teammate2.CommitteeChoice = leader.CommitteeChoice

	members := []MunRegistrationInput{leader, teammate1, teammate2}

	for _, member := range members {
		exists, err := emailRegisteredAnywhere(db, member.Email)
		if err != nil {
			return nil, NewInternalError(err)
		}
		if exists {
			return nil, NewDuplicateError(member.Email)
		}
	}

	for _, member := range members {
		if fieldErrs := ValidateMunRegistration(member); len(fieldErrs) > 0 {
			return nil, NewValidationError(fieldErrs)
		}
		if err := CheckInstituteAllowed(member.Institute, member.University); err != nil {
			return nil, err
		}
	}

	if teammate1.IsNitrStudent != leader.IsNitrStudent || teammate2.IsNitrStudent != leader.IsNitrStudent {
		return nil, NewTeamCompositionError(leader.IsNitrStudent)
	}

	teamID := uuid.NewString()
	rows := []models.MunRegistration{
		munInputToModel(leader, &leaderFirebaseUID, teamID, true),
		munInputToModel(teammate1, nil, teamID, false),
		munInputToModel(teammate2, nil, teamID, false),
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, NewInternalError(errors.Wrap(tx.Error, "begin team transaction"))
	}
	for i := range rows {
		if err := tx.Create(&rows[i]).Error; err != nil {
			tx.Rollback()
			return nil, translateCreateError(err, rows[i].Email)
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, NewInternalError(errors.Wrap(err, "commit team transaction"))
	}

	return &TeamRegistrationResult{
		TeamID:       teamID,
		TeamLeaderID: rows[0].ID,
		Teammate1ID:  rows[1].ID,
		Teammate2ID:  rows[2].ID,
	}, nil
}

// GetMunUserByFirebaseUID returns the MUN registration for the
// identity with its payment state, or nil when none exists.
func GetMunUserByFirebaseUID(db *gorm.DB, firebaseUID string) (*MunUserStatus, error) {
	var reg models.MunRegistration
	err := db.Where("firebase_uid = ?", firebaseUID).First(&reg).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewInternalError(errors.Wrap(err, "look up mun registration"))
	}

	paid, err := teamPaymentVerified(db, reg.TeamID)
	if err != nil {
		return nil, err
	}
	return &MunUserStatus{MunRegistration: reg, IsPaymentVerified: paid}, nil
}

func teamPaymentVerified(db *gorm.DB, teamID string) (bool, error) {
	var txn models.Transaction
	err := db.Where("team_id = ? AND type = ?", teamID, models.TransactionTypeMun).First(&txn).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, NewInternalError(errors.Wrap(err, "look up mun transaction"))
	}
	return txn.IsVerified, nil
}

// GetTeamMembers lists every registration sharing a team identifier.
func GetTeamMembers(db *gorm.DB, teamID string) ([]models.MunRegistration, error) {
	var members []models.MunRegistration
	if err := db.Where("team_id = ?", teamID).Order("is_team_leader DESC, id ASC").Find(&members).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "list team members"))
	}
	return members, nil
}

// AttachTeammateUID links a late-arriving identity to the row the
// team leader created for them. The row is updated in place, never
// recreated, and an identity already on the row is left alone.
// Returns nil when no such pending row exists.
func AttachTeammateUID(db *gorm.DB, email, firebaseUID string) (*models.MunRegistration, error) {
	var reg models.MunRegistration
	err := db.Where("email = ? AND firebase_uid IS NULL", email).First(&reg).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewInternalError(errors.Wrap(err, "look up teammate by email"))
	}
	reg.FirebaseUID = &firebaseUID
	if err := db.Model(&reg).Update("firebase_uid", firebaseUID).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "attach teammate uid"))
	}
	return &reg, nil
}

// MunCheckResult is the response of the check-registration endpoint,
// driving which wizard step the client resumes at.
type MunCheckResult struct {
	IsRegistered      bool   `json:"isRegistered"`
	UserID            uint   `json:"userId,omitempty"`
	Name              string `json:"name,omitempty"`
	Email             string `json:"email,omitempty"`
	IsPaymentVerified bool   `json:"isPaymentVerified"`
	IsTeamMember      bool   `json:"isTeamMember"`
	IsTeamLeader      bool   `json:"isTeamLeader"`
	TeamID            string `json:"teamId,omitempty"`
	TeamLeaderName    string `json:"teamLeaderName,omitempty"`
}

// CheckMunRegistration resolves the caller's MUN state. When the uid
// is unknown but the email matches a teammate row created by a
// leader, the uid is attached first.
func CheckMunRegistration(db *gorm.DB, firebaseUID, email string) (*MunCheckResult, error) {
	munUser, err := GetMunUserByFirebaseUID(db, firebaseUID)
	if err != nil {
		return nil, err
	}
	if munUser == nil && email != "" {
		updated, err := AttachTeammateUID(db, email, firebaseUID)
		if err != nil {
			return nil, err
		}
		if updated != nil {
			munUser, err = GetMunUserByFirebaseUID(db, firebaseUID)
			if err != nil {
				return nil, err
			}
		}
	}
	if munUser == nil {
		return &MunCheckResult{IsRegistered: false}, nil
	}

	result := &MunCheckResult{
		IsRegistered:      true,
		UserID:            munUser.ID,
		Name:              munUser.Name,
		Email:             munUser.Email,
		IsPaymentVerified: munUser.IsVerified,
		IsTeamMember:      munUser.CommitteeChoice.IsTeamCommittee(),
		IsTeamLeader:      munUser.IsTeamLeader,
		TeamID:            munUser.TeamID,
	}
	if result.IsTeamMember && !munUser.IsTeamLeader {
		members, err := GetTeamMembers(db, munUser.TeamID)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			if m.IsTeamLeader {
				result.TeamLeaderName = m.Name
				break
			}
		}
	}
	return result, nil
}

// CrossRegistrationStatus reports whether an identity is registered
// under either event. MUN registration implicitly counts as
// general-event registration.
type CrossRegistrationStatus struct {
	IsMunRegistered       bool   `json:"isMunRegistered"`
	IsNitrutsavRegistered bool   `json:"isNitrutsavRegistered"`
	RegistrationType      string `json:"registrationType,omitempty"`
	UserID                uint   `json:"userId,omitempty"`
	Name                  string `json:"name,omitempty"`
	Email                 string `json:"email,omitempty"`
	IsPaymentVerified     bool   `json:"isPaymentVerified"`
	IsNitrStudent         bool   `json:"isNitrStudent"`
	IsVerified            bool   `json:"isVerified"`
}

// CheckCrossRegistration looks the identity up in MUN registrations
// first, then general registrations.
func CheckCrossRegistration(db *gorm.DB, firebaseUID string) (*CrossRegistrationStatus, error) {
	munUser, err := GetMunUserByFirebaseUID(db, firebaseUID)
	if err != nil {
		return nil, err
	}
	if munUser != nil {
		return &CrossRegistrationStatus{
			IsMunRegistered:       true,
			IsNitrutsavRegistered: true, // MUN counts as NITRUTSAV
			RegistrationType:      "MUN",
			UserID:                munUser.ID,
			Name:                  munUser.Name,
			Email:                 munUser.Email,
			IsPaymentVerified:     munUser.IsPaymentVerified,
			IsNitrStudent:         munUser.IsNitrStudent,
			IsVerified:            munUser.IsVerified,
		}, nil
	}

	user, err := GetUserByFirebaseUID(db, firebaseUID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		paid, err := userPaymentVerified(db, user.ID)
		if err != nil {
			return nil, err
		}
		return &CrossRegistrationStatus{
			IsNitrutsavRegistered: true,
			RegistrationType:      "NITRUTSAV",
			UserID:                user.ID,
			Name:                  user.Name,
			Email:                 user.Email,
			IsPaymentVerified:     paid,
			IsNitrStudent:         user.IsNitrStudent,
			IsVerified:            user.IsVerified,
		}, nil
	}

	return &CrossRegistrationStatus{}, nil
}

func userPaymentVerified(db *gorm.DB, userID uint) (bool, error) {
	var txn models.Transaction
	err := db.Where("user_id = ?", userID).First(&txn).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, NewInternalError(errors.Wrap(err, "look up user transaction"))
	}
	return txn.IsVerified, nil
}

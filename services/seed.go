package services

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"nitrutsav-backend/models"
)

// SeedData is the fixture payload for environment bootstrapping.
type SeedData struct {
	Users []struct {
		FirebaseUID        string        `json:"firebaseUid"`
		Name               string        `json:"name"`
		Email              string        `json:"email"`
		Phone              string        `json:"phone"`
		Gender             models.Gender `json:"gender"`
		Institute          string        `json:"institute"`
		University         string        `json:"university"`
		RollNumber         string        `json:"rollNumber"`
		IDCard             string        `json:"idCard"`
		ReferralCode       string        `json:"referralCode"`
		Permission         string        `json:"permission"`
		Undertaking        string        `json:"undertaking"`
		IsNitrStudent      bool          `json:"isNitrStudent"`
		WantsAccommodation bool          `json:"wantsAccommodation"`
		IsVerified         bool          `json:"isVerified"`
	} `json:"users"`
	Transactions []struct {
		UserEmail  string `json:"userEmail"`
		Amount     int    `json:"amount"`
		IsVerified bool   `json:"isVerified"`
	} `json:"transactions"`
	MunRegistrations []struct {
		FirebaseUID           string             `json:"firebaseUid"`
		TeamID                string             `json:"teamId"`
		IsTeamLeader          bool               `json:"isTeamLeader"`
		Name                  string             `json:"name"`
		Gender                models.Gender      `json:"gender"`
		DateOfBirth           string             `json:"dateOfBirth"`
		Phone                 string             `json:"phone"`
		Email                 string             `json:"email"`
		StudentType           models.StudentType `json:"studentType"`
		Institute             string             `json:"institute"`
		University            string             `json:"university"`
		City                  string             `json:"city"`
		State                 string             `json:"state"`
		RollNumber            string             `json:"rollNumber"`
		IDCard                string             `json:"idCard"`
		CommitteeChoice       models.Committee   `json:"committeeChoice"`
		HasParticipatedBefore bool               `json:"hasParticipatedBefore"`
		EmergencyContactName  string             `json:"emergencyContactName"`
		EmergencyContactPhone string             `json:"emergencyContactPhone"`
		BloodGroup            models.BloodGroup  `json:"bloodGroup"`
		AgreedToTerms         bool               `json:"agreedToTerms"`
		IsNitrStudent         bool               `json:"isNitrStudent"`
		IsVerified            bool               `json:"isVerified"`
	} `json:"munRegistrations"`
	MunTransactions []struct {
		TeamID     string `json:"teamId"`
		Amount     int    `json:"amount"`
		IsVerified bool   `json:"isVerified"`
	} `json:"munTransactions"`
	Admins []struct {
		Email      string `json:"email"`
		Name       string `json:"name"`
		IsApproved bool   `json:"isApproved"`
	} `json:"admins"`
}

// SeedResult reports per-category insert counts plus per-row error
// strings. Partial success is intentional: seeding keeps going past
// bad rows and reports them instead of rolling back.
type SeedResult struct {
	Users            int      `json:"users"`
	Transactions     int      `json:"transactions"`
	MunRegistrations int      `json:"munRegistrations"`
	MunTransactions  int      `json:"munTransactions"`
	Admins           int      `json:"admins"`
	Errors           []string `json:"errors"`
}

func generateTxnID(txnType models.TransactionType) string {
	prefix := "NU26"
	if txnType == models.TransactionTypeMun {
		prefix = "MUN26"
	}
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), 1000+rand.Intn(9000))
}

func parseSeedDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// SeedDatabase bulk-loads fixture data row by row.
func SeedDatabase(db *gorm.DB, data SeedData) *SeedResult {
	result := &SeedResult{Errors: []string{}}

	for _, a := range data.Admins {
		admin := models.Admin{Email: a.Email, Name: a.Name, IsApproved: a.IsApproved}
		if err := db.Create(&admin).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Admin %s: %v", a.Email, err))
			continue
		}
		result.Admins++
	}

	userIDByEmail := make(map[string]uint)
	for _, u := range data.Users {
		user := models.User{
			FirebaseUID:        u.FirebaseUID,
			Name:               u.Name,
			Email:              u.Email,
			Phone:              u.Phone,
			Gender:             u.Gender,
			Institute:          u.Institute,
			University:         u.University,
			RollNumber:         u.RollNumber,
			IDCard:             u.IDCard,
			ReferralCode:       u.ReferralCode,
			Permission:         u.Permission,
			Undertaking:        u.Undertaking,
			IsNitrStudent:      u.IsNitrStudent,
			WantsAccommodation: u.WantsAccommodation,
			IsVerified:         u.IsVerified,
		}
		if err := db.Create(&user).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("User %s: %v", u.Email, err))
			continue
		}
		userIDByEmail[u.Email] = user.ID
		result.Users++
	}

	for _, t := range data.Transactions {
		userID, ok := userIDByEmail[t.UserEmail]
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Transaction: User %s not found", t.UserEmail))
			continue
		}
		txn := models.Transaction{
			Type:       models.TransactionTypeNitrutsav,
			UserID:     &userID,
			TxnID:      generateTxnID(models.TransactionTypeNitrutsav),
			Amount:     t.Amount,
			IsVerified: t.IsVerified,
		}
		if err := db.Create(&txn).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Transaction for %s: %v", t.UserEmail, err))
			continue
		}
		result.Transactions++
	}

	for _, r := range data.MunRegistrations {
		dob, err := parseSeedDate(r.DateOfBirth)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("MUN %s: invalid dateOfBirth %q", r.Email, r.DateOfBirth))
			continue
		}
		var uid *string
		if r.FirebaseUID != "" {
			uid = &r.FirebaseUID
		}
		reg := models.MunRegistration{
			FirebaseUID:           uid,
			TeamID:                r.TeamID,
			IsTeamLeader:          r.IsTeamLeader,
			Name:                  r.Name,
			Gender:                r.Gender,
			DateOfBirth:           dob,
			Phone:                 r.Phone,
			Email:                 r.Email,
			StudentType:           r.StudentType,
			Institute:             r.Institute,
			University:            r.University,
			City:                  r.City,
			State:                 r.State,
			RollNumber:            r.RollNumber,
			IDCard:                r.IDCard,
			CommitteeChoice:       r.CommitteeChoice,
			HasParticipatedBefore: r.HasParticipatedBefore,
			EmergencyContactName:  r.EmergencyContactName,
			EmergencyContactPhone: r.EmergencyContactPhone,
			BloodGroup:            r.BloodGroup,
			AgreedToTerms:         r.AgreedToTerms,
			IsNitrStudent:         r.IsNitrStudent,
			IsVerified:            r.IsVerified,
		}
		if err := db.Create(&reg).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("MUN %s: %v", r.Email, err))
			continue
		}
		result.MunRegistrations++
	}

	for _, t := range data.MunTransactions {
		teamID := t.TeamID
		txn := models.Transaction{
			Type:       models.TransactionTypeMun,
			TeamID:     &teamID,
			TxnID:      generateTxnID(models.TransactionTypeMun),
			Amount:     t.Amount,
			IsVerified: t.IsVerified,
		}
		if err := db.Create(&txn).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("MUN Transaction %s: %v", t.TeamID, err))
			continue
		}
		result.MunTransactions++
	}

	return result
}

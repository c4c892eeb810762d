package services

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"nitrutsav-backend/models"
)

// IsAdmin reports whether the email belongs to an approved admin.
func IsAdmin(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.Admin{}).Where("email = ? AND is_approved = ?", email, true).Count(&count).Error
	if err != nil {
		return false, NewInternalError(errors.Wrap(err, "look up admin"))
	}
	return count > 0, nil
}

// munTransactionsByTeam loads MUN transactions keyed by team id so
// list endpoints can attach payment state without a per-row query.
func munTransactionsByTeam(db *gorm.DB) (map[string]models.Transaction, error) {
	var txns []models.Transaction
	if err := db.Where("type = ?", models.TransactionTypeMun).Find(&txns).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "list mun transactions"))
	}
	byTeam := make(map[string]models.Transaction, len(txns))
	for _, t := range txns {
		if t.TeamID != nil {
			byTeam[*t.TeamID] = t
		}
	}
	return byTeam, nil
}

// MunRegistrationWithPayment is one admin-list row.
type MunRegistrationWithPayment struct {
	models.MunRegistration
	IsPaymentVerified bool `json:"isPaymentVerified"`
	PaymentAmount     int  `json:"paymentAmount"`
}

// MunRegistrationPage is a page of the admin registration table.
type MunRegistrationPage struct {
	Registrations []MunRegistrationWithPayment `json:"registrations"`
	HasMore       bool                         `json:"hasMore"`
	Total         int64                        `json:"total"`
	Page          int                          `json:"page"`
	PageSize      int                          `json:"pageSize"`
}

// GetPaginatedMunRegistrations lists MUN registrations newest first
// with their payment state.
func GetPaginatedMunRegistrations(db *gorm.DB, pageSize, page int) (*MunRegistrationPage, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 0 {
		page = 0
	}
	offset := page * pageSize

	var regs []models.MunRegistration
	if err := db.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&regs).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "list mun registrations"))
	}
	var total int64
	if err := db.Model(&models.MunRegistration{}).Count(&total).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count mun registrations"))
	}
	byTeam, err := munTransactionsByTeam(db)
	if err != nil {
		return nil, err
	}

	rows := make([]MunRegistrationWithPayment, 0, len(regs))
	for _, reg := range regs {
		row := MunRegistrationWithPayment{MunRegistration: reg}
		if txn, ok := byTeam[reg.TeamID]; ok {
			row.IsPaymentVerified = txn.IsVerified
			row.PaymentAmount = txn.Amount
		}
		rows = append(rows, row)
	}

	return &MunRegistrationPage{
		Registrations: rows,
		HasMore:       int64(offset+pageSize) < total,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MunStatistics is the admin dashboard summary. Payment counts cover
// non-NITR participants only; NITR students owe nothing.
type MunStatistics struct {
	Total    int64 `json:"total"`
	Male     int64 `json:"male"`
	Female   int64 `json:"female"`
	Verified int64 `json:"verified"`
	Pending  int64 `json:"pending"`
	Teams    int64 `json:"teams"`
}

func GetMunStatistics(db *gorm.DB) (*MunStatistics, error) {
	stats := &MunStatistics{}
	model := db.Model(&models.MunRegistration{})

	if err := model.Count(&stats.Total).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count registrations"))
	}
	if err := db.Model(&models.MunRegistration{}).Where("gender = ?", models.GenderMale).Count(&stats.Male).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count male"))
	}
	if err := db.Model(&models.MunRegistration{}).Where("gender = ?", models.GenderFemale).Count(&stats.Female).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count female"))
	}

	var nonNitr int64
	if err := db.Model(&models.MunRegistration{}).Where("is_nitr_student = ?", false).Count(&nonNitr).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count non-nitr"))
	}
	if err := db.Model(&models.MunRegistration{}).
		Where("is_nitr_student = ? AND is_verified = ?", false, true).
		Count(&stats.Verified).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count verified"))
	}
	stats.Pending = nonNitr - stats.Verified

	if err := db.Model(&models.MunRegistration{}).Distinct("team_id").Count(&stats.Teams).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count teams"))
	}
	return stats, nil
}

// MunTeam groups a team's rows with shared payment state for the
// admin team view.
type MunTeam struct {
	TeamID            string                   `json:"teamId"`
	Members           []models.MunRegistration `json:"members"`
	IsPaymentVerified bool                     `json:"isPaymentVerified"`
	PaymentAmount     int                      `json:"paymentAmount"`
	CommitteeChoice   models.Committee         `json:"committeeChoice"`
	StudentType       models.StudentType       `json:"studentType"`
}

// GetMunTeamsGrouped returns every registration grouped by team id,
// newest team first.
func GetMunTeamsGrouped(db *gorm.DB) ([]MunTeam, error) {
	var regs []models.MunRegistration
	if err := db.Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "list mun registrations"))
	}
	byTeam, err := munTransactionsByTeam(db)
	if err != nil {
		return nil, err
	}

	teams := []MunTeam{}
	index := make(map[string]int)
	for _, reg := range regs {
		i, ok := index[reg.TeamID]
		if !ok {
			team := MunTeam{
				TeamID:          reg.TeamID,
				CommitteeChoice: reg.CommitteeChoice,
				StudentType:     reg.StudentType,
			}
			if txn, found := byTeam[reg.TeamID]; found {
				team.IsPaymentVerified = txn.IsVerified
				team.PaymentAmount = txn.Amount
			}
			teams = append(teams, team)
			i = len(teams) - 1
			index[reg.TeamID] = i
		}
		teams[i].Members = append(teams[i].Members, reg)
	}
	return teams, nil
}

// UserPage is a page of the general-event registration table.
type UserPage struct {
	Users    []models.User `json:"users"`
	HasMore  bool          `json:"hasMore"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

func GetPaginatedUsers(db *gorm.DB, pageSize, page int) (*UserPage, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 0 {
		page = 0
	}
	offset := page * pageSize

	var users []models.User
	if err := db.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "list users"))
	}
	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, NewInternalError(errors.Wrap(err, "count users"))
	}
	return &UserPage{
		Users:    users,
		HasMore:  int64(offset+pageSize) < total,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// VerifyTransaction flips a manual proof-of-payment transaction to
// verified and propagates the flag to the linked user or team rows.
func VerifyTransaction(db *gorm.DB, transactionID uint) error {
	var txn models.Transaction
	if err := db.First(&txn, transactionID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Transaction not found")
		}
		return NewInternalError(errors.Wrap(err, "look up transaction"))
	}

	tx := db.Begin()
	if tx.Error != nil {
		return NewInternalError(errors.Wrap(tx.Error, "begin verify transaction"))
	}
	if err := tx.Model(&txn).Update("is_verified", true).Error; err != nil {
		tx.Rollback()
		return NewInternalError(errors.Wrap(err, "verify transaction"))
	}
	if txn.UserID != nil {
		if err := tx.Model(&models.User{}).Where("id = ?", *txn.UserID).Update("is_verified", true).Error; err != nil {
			tx.Rollback()
			return NewInternalError(errors.Wrap(err, "verify user"))
		}
	}
	if txn.TeamID != nil {
		if err := tx.Model(&models.MunRegistration{}).Where("team_id = ?", *txn.TeamID).Update("is_verified", true).Error; err != nil {
			tx.Rollback()
			return NewInternalError(errors.Wrap(err, "verify team"))
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return NewInternalError(errors.Wrap(err, "commit verify transaction"))
	}
	return nil
}

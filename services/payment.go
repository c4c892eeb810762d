package services

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"nitrutsav-backend/models"
)

// PaymentCallback is the payload delivered by the payment gateway (or
// entered manually for QR proof-of-payment). PaymentID is the
// gateway's payment identifier and the idempotency key.
type PaymentCallback struct {
	PaymentID  string               `json:"paymentId"`
	OrderID    string               `json:"orderId"`
	Signature  string               `json:"signature"`
	Method     models.PaymentMethod `json:"method"`
	Screenshot string               `json:"screenshot"`
	Amount     int                  `json:"amount"`
}

func (p PaymentCallback) validate() error {
	var fieldErrs []FieldError
	if p.PaymentID == "" {
		fieldErrs = append(fieldErrs, FieldError{"paymentId", "Payment details not found"})
	}
	if !p.Method.IsValid() {
		fieldErrs = append(fieldErrs, FieldError{"method", "Invalid payment method"})
	}
	if p.Method == models.PaymentMethodQR && p.Screenshot == "" {
		fieldErrs = append(fieldErrs, FieldError{"screenshot", "Payment screenshot is required for QR payments"})
	}
	if len(fieldErrs) > 0 {
		return NewValidationError(fieldErrs)
	}
	return nil
}

// paymentAlreadyRecorded is the explicit idempotency check: a second
// callback with a payment id we have seen is rejected before any
// insert is attempted. The unique constraint on txn_id closes the
// race between check and insert.
func paymentAlreadyRecorded(db *gorm.DB, paymentID string) (bool, error) {
	var count int64
	if err := db.Model(&models.Transaction{}).Where("txn_id = ?", paymentID).Count(&count).Error; err != nil {
		return false, NewInternalError(errors.Wrap(err, "check payment id"))
	}
	return count > 0, nil
}

// UpdatePaymentStatus records a verified general-event payment: the
// user's row is marked verified and a user-keyed transaction is
// inserted, atomically.
func UpdatePaymentStatus(db *gorm.DB, userID uint, callback PaymentCallback) error {
	if err := callback.validate(); err != nil {
		return err
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("User not found")
		}
		return NewInternalError(errors.Wrap(err, "look up user"))
	}

	recorded, err := paymentAlreadyRecorded(db, callback.PaymentID)
	if err != nil {
		return err
	}
	if recorded {
		return &Error{Kind: KindDuplicate, Message: "Payment has already been recorded"}
	}

	tx := db.Begin()
	if tx.Error != nil {
		return NewInternalError(errors.Wrap(tx.Error, "begin payment transaction"))
	}
	if err := tx.Model(&user).Update("is_verified", true).Error; err != nil {
		tx.Rollback()
		return NewInternalError(errors.Wrap(err, "verify user"))
	}
	txn := models.Transaction{
		Type:              models.TransactionTypeNitrutsav,
		UserID:            &user.ID,
		TxnID:             callback.PaymentID,
		Amount:            callback.Amount,
		PaymentMethod:     callback.Method,
		PaymentScreenshot: callback.Screenshot,
		IsVerified:        true,
	}
	if err := tx.Create(&txn).Error; err != nil {
		tx.Rollback()
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return &Error{Kind: KindDuplicate, Message: "Payment has already been recorded"}
		}
		return NewInternalError(errors.Wrap(err, "create transaction"))
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return NewInternalError(errors.Wrap(err, "commit payment transaction"))
	}
	return nil
}

// UpdateMunPaymentStatus records a verified MUN payment. The amount
// is computed server-side from the registration, every row sharing
// the team identifier is marked verified, and one team-keyed
// transaction is inserted, atomically.
func UpdateMunPaymentStatus(db *gorm.DB, munRegistrationID uint, callback PaymentCallback) error {
	if err := callback.validate(); err != nil {
		return err
	}

	var reg models.MunRegistration
	if err := db.First(&reg, munRegistrationID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("MUN registration not found")
		}
		return NewInternalError(errors.Wrap(err, "look up mun registration"))
	}

	recorded, err := paymentAlreadyRecorded(db, callback.PaymentID)
	if err != nil {
		return err
	}
	if recorded {
		return &Error{Kind: KindDuplicate, Message: "Payment has already been recorded"}
	}

	amount := MunRegistrationFee(reg.StudentType, reg.CommitteeChoice, reg.IsNitrStudent)
	teamID := reg.TeamID

	tx := db.Begin()
	if tx.Error != nil {
		return NewInternalError(errors.Wrap(tx.Error, "begin payment transaction"))
	}
	if err := tx.Model(&models.MunRegistration{}).Where("team_id = ?", teamID).Update("is_verified", true).Error; err != nil {
		tx.Rollback()
		return NewInternalError(errors.Wrap(err, "verify team"))
	}
	txn := models.Transaction{
		Type:              models.TransactionTypeMun,
		TeamID:            &teamID,
		TxnID:             callback.PaymentID,
		Amount:            amount,
		PaymentMethod:     callback.Method,
		PaymentScreenshot: callback.Screenshot,
		IsVerified:        true,
	}
	if err := tx.Create(&txn).Error; err != nil {
		tx.Rollback()
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return &Error{Kind: KindDuplicate, Message: "Payment has already been recorded"}
		}
		return NewInternalError(errors.Wrap(err, "create mun transaction"))
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return NewInternalError(errors.Wrap(err, "commit payment transaction"))
	}
	return nil
}

// PaymentStatus reports the caller's transaction state.
type PaymentStatus struct {
	IsVerified    bool                 `json:"isVerified"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod,omitempty"`
	Amount        int                  `json:"amount"`
	TxnID         string               `json:"txnId,omitempty"`
}

// GetPaymentStatus returns the transaction state for a general-event
// registration.
func GetPaymentStatus(db *gorm.DB, userID uint) (*PaymentStatus, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("User not found")
		}
		return nil, NewInternalError(errors.Wrap(err, "look up user"))
	}

	var txn models.Transaction
	err := db.Where("user_id = ?", userID).First(&txn).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return &PaymentStatus{}, nil
	}
	if err != nil {
		return nil, NewInternalError(errors.Wrap(err, "look up transaction"))
	}
	return &PaymentStatus{
		IsVerified:    txn.IsVerified,
		PaymentMethod: txn.PaymentMethod,
		Amount:        txn.Amount,
		TxnID:         txn.TxnID,
	}, nil
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nitrutsav-backend/config"
	"nitrutsav-backend/models"
)

func razorpayCallback(paymentID string) PaymentCallback {
	return PaymentCallback{
		PaymentID: paymentID,
		OrderID:   "order_001",
		Signature: "sig_001",
		Method:    models.PaymentMethodRazorpay,
		Amount:    1000,
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, validRegistrationInput("payer@gmail.com"), "uid-payer")
	require.NoError(t, err)

	require.NoError(t, UpdatePaymentStatus(db, user.ID, razorpayCallback("pay_abc")))

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.True(t, fresh.IsVerified)

	status, err := GetPaymentStatus(db, user.ID)
	require.NoError(t, err)
	assert.True(t, status.IsVerified)
	assert.Equal(t, "pay_abc", status.TxnID)
}

func TestUpdatePaymentStatusUnknownUser(t *testing.T) {
	db := newTestDB(t)

	err := UpdatePaymentStatus(db, 999, razorpayCallback("pay_abc"))
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
}

func TestPaymentCallbackValidation(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, validRegistrationInput("payer@gmail.com"), "uid-payer")
	require.NoError(t, err)

	// Missing gateway payment id.
	cb := razorpayCallback("")
	err = UpdatePaymentStatus(db, user.ID, cb)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)

	// QR proof requires a screenshot.
	cb = razorpayCallback("pay_qr")
	cb.Method = models.PaymentMethodQR
	err = UpdatePaymentStatus(db, user.ID, cb)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)
	assert.Contains(t, fieldNames(svcErr.Fields), "screenshot")
}

func TestMunPaymentVerifiesWholeTeam(t *testing.T) {
	db := newTestDB(t)

	leader, teammate1, teammate2 := validTeamInputs()
	result, err := RegisterMunTeam(db, leader, teammate1, teammate2, "uid-leader")
	require.NoError(t, err)

	require.NoError(t, UpdateMunPaymentStatus(db, result.TeamLeaderID, razorpayCallback("pay_team")))

	members, err := GetTeamMembers(db, result.TeamID)
	require.NoError(t, err)
	require.Len(t, members, 3)
	for _, m := range members {
		assert.True(t, m.IsVerified)
	}

	var txn models.Transaction
	require.NoError(t, db.Where("txn_id = ?", "pay_team").First(&txn).Error)
	require.NotNil(t, txn.TeamID)
	assert.Equal(t, result.TeamID, *txn.TeamID)
	assert.Equal(t, models.TransactionTypeMun, txn.Type)
	// College Moot Court team: base fee tripled, computed server-side.
	assert.Equal(t, config.MunFeeCollege*3, txn.Amount)
}

func TestDuplicatePaymentCallbackRejected(t *testing.T) {
	db := newTestDB(t)

	result, err := RegisterMunIndividual(db, validMunInput("solo.payer@gmail.com"), "uid-solo-payer")
	require.NoError(t, err)

	require.NoError(t, UpdateMunPaymentStatus(db, result.UserID, razorpayCallback("pay_dup")))

	err = UpdateMunPaymentStatus(db, result.UserID, razorpayCallback("pay_dup"))
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindDuplicate, svcErr.Kind)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("txn_id = ?", "pay_dup").Count(&count).Error)
	assert.Equal(t, int64(1), count, "no second transaction row")
}

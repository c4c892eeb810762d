package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nitrutsav-backend/config"
	"nitrutsav-backend/services"
	"nitrutsav-backend/wizard"
)

// VerifyPayment records the payment-gateway callback for the caller's
// general-event registration. A callback repeating a known gateway
// payment id is rejected without creating a second transaction.
func VerifyPayment(c *gin.Context) {
	var callback services.PaymentCallback
	if err := c.ShouldBindJSON(&callback); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByFirebaseUID(config.DB, currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondError(c, services.NewNotFoundError("User not found"))
		return
	}

	if err := services.UpdatePaymentStatus(config.DB, user.ID, callback); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Payment verified successfully"})
}

// VerifyMunPayment records the callback against the caller's MUN
// registration, verifying the whole team, and purges any persisted
// wizard draft.
func VerifyMunPayment(c *gin.Context) {
	var callback services.PaymentCallback
	if err := c.ShouldBindJSON(&callback); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	munUser, err := services.GetMunUserByFirebaseUID(config.DB, currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if munUser == nil {
		respondError(c, services.NewNotFoundError("MUN registration not found"))
		return
	}

	if err := services.UpdateMunPaymentStatus(config.DB, munUser.ID, callback); err != nil {
		respondError(c, err)
		return
	}

	if err := wizard.NewGormStore(config.DB).Clear(currentUID(c)); err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "MUN payment verified successfully"})
}

// PaymentStatus reports the caller's general-event transaction state.
func PaymentStatus(c *gin.Context) {
	user, err := services.GetUserByFirebaseUID(config.DB, currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondError(c, services.NewNotFoundError("User not found"))
		return
	}

	status, err := services.GetPaymentStatus(config.DB, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, status)
}

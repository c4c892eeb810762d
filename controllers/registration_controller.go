package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nitrutsav-backend/config"
	"nitrutsav-backend/services"
)

// Register creates a general-event registration for the signed-in
// identity.
func Register(c *gin.Context) {
	var input services.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := services.RegisterUser(config.DB, input, currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"userId": user.ID, "isVerified": user.IsVerified})
}

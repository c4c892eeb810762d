package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nitrutsav-backend/config"
	"nitrutsav-backend/models"
	"nitrutsav-backend/services"
)

// CheckMunRegistration reports the caller's MUN registration and
// payment state, attaching the identity to a pending teammate row by
// email on first sign-in.
func CheckMunRegistration(c *gin.Context) {
	result, err := services.CheckMunRegistration(config.DB, currentUID(c), currentEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// RegisterMun creates an individual MUN registration or a three-person
// Moot Court team. The body carries an explicit kind field; shape-based
// dispatch is not supported.
func RegisterMun(c *gin.Context) {
	var input struct {
		Kind       string                         `json:"kind" binding:"required,oneof=individual team"`
		Individual *services.MunRegistrationInput `json:"individual"`
		TeamLeader *services.MunRegistrationInput `json:"teamLeader"`
		Teammate1  *services.MunRegistrationInput `json:"teammate1"`
		Teammate2  *services.MunRegistrationInput `json:"teammate2"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	switch input.Kind {
	case "individual":
		if input.Individual == nil {
			respondBadRequest(c, "individual registration payload is required")
			return
		}
		result, err := services.RegisterMunIndividual(config.DB, *input.Individual, currentUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, result)

	case "team":
		if input.TeamLeader == nil || input.Teammate1 == nil || input.Teammate2 == nil {
			respondBadRequest(c, "teamLeader, teammate1 and teammate2 are required")
			return
		}
		result, err := services.RegisterMunTeam(config.DB, *input.TeamLeader, *input.Teammate1, *input.Teammate2, currentUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, result)
	}
}

// MunFee quotes the registration fee for a student type and committee
// combination.
func MunFee(c *gin.Context) {
	studentType := models.StudentType(c.Query("studentType"))
	committee := models.Committee(c.Query("committee"))
	isNitrStudent := c.Query("isNitrStudent") == "true"

	if !studentType.IsValid() {
		respondBadRequest(c, "Invalid student type")
		return
	}
	if !committee.IsValid() {
		respondBadRequest(c, "Invalid committee")
		return
	}

	amount := services.MunRegistrationFee(studentType, committee, isNitrStudent)
	respondOK(c, http.StatusOK, gin.H{"amount": amount})
}

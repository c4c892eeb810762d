package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"nitrutsav-backend/config"
	"nitrutsav-backend/models"
	"nitrutsav-backend/services"
)

// RegisterAdmin creates an admin-portal account. Accounts start
// unapproved; approval is flipped out of band.
func RegisterAdmin(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}

	admin := models.Admin{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		respondError(c, services.NewDuplicateError(input.Email))
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"message": "Admin registered, awaiting approval"})
}

// LoginAdmin verifies admin credentials and issues a bearer token.
func LoginAdmin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", input.Email).First(&admin).Error; err != nil {
		respondError(c, services.NewUnauthorizedError("Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		respondError(c, services.NewUnauthorizedError("Invalid email or password"))
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   admin.Email,
		"email": admin.Email,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})
	tokenString, err := token.SignedString(config.JWTSecret)
	if err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}

	respondOK(c, http.StatusOK, gin.H{"token": tokenString})
}

// CheckAdmin answers whether the caller is an approved admin.
func CheckAdmin(c *gin.Context) {
	isAdmin, err := services.IsAdmin(config.DB, currentEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"amIAdmin": isAdmin})
}

// AuthStatus reports the caller's registration state across both
// event types.
func AuthStatus(c *gin.Context) {
	status, err := services.CheckCrossRegistration(config.DB, currentUID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"isRegistered": status.IsNitrutsavRegistered || status.IsMunRegistered,
		"isVerified":   status.IsVerified,
		"status":       status,
	})
}

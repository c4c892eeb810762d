package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nitrutsav-backend/config"
	"nitrutsav-backend/services"
)

// Seed bulk-loads fixture data for environment bootstrapping. Partial
// success is intentional: inserts continue past bad rows and the
// response reports per-category counts plus per-row errors.
func Seed(c *gin.Context) {
	var data services.SeedData
	if err := c.ShouldBindJSON(&data); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result := services.SeedDatabase(config.DB, data)
	respondOK(c, http.StatusOK, gin.H{
		"message": "Seed completed",
		"inserted": gin.H{
			"users":            result.Users,
			"transactions":     result.Transactions,
			"munRegistrations": result.MunRegistrations,
			"munTransactions":  result.MunTransactions,
			"admins":           result.Admins,
		},
		"errors": result.Errors,
	})
}

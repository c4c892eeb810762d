package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nitrutsav-backend/config"
	"nitrutsav-backend/services"
)

// requireAdmin gates a handler on an approved admin row for the
// caller's email. Returns false after writing the error response.
func requireAdmin(c *gin.Context) bool {
	isAdmin, err := services.IsAdmin(config.DB, currentEmail(c))
	if err != nil {
		respondError(c, err)
		return false
	}
	if !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin access required"})
		return false
	}
	return true
}

func pageParams(c *gin.Context) (pageSize, page int) {
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	return pageSize, page
}

// ListMunRegistrations pages through MUN registrations with payment
// state, newest first.
func ListMunRegistrations(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	pageSize, page := pageParams(c)
	result, err := services.GetPaginatedMunRegistrations(config.DB, pageSize, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// MunStats returns the dashboard summary.
func MunStats(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	stats, err := services.GetMunStatistics(config.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, stats)
}

// MunTeams returns registrations grouped by team identifier.
func MunTeams(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	teams, err := services.GetMunTeamsGrouped(config.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, teams)
}

// ListUsers pages through general-event registrations.
func ListUsers(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	pageSize, page := pageParams(c)
	result, err := services.GetPaginatedUsers(config.DB, pageSize, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// VerifyTransaction marks a manual proof-of-payment transaction as
// verified, propagating to the linked user or team.
func VerifyTransaction(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid transaction id")
		return
	}
	if err := services.VerifyTransaction(config.DB, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Transaction verified"})
}

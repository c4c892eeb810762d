package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nitrutsav-backend/services"
)

// All endpoints answer with a uniform envelope: {"success":true,
// "data":…} or {"success":false,"error":…}, status derived from the
// error kind. Internal causes are logged server-side only.

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func statusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation, services.KindBlockedInstitute:
		return http.StatusBadRequest
	case services.KindDuplicate:
		return http.StatusConflict
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		if svcErr.Kind == services.KindInternal {
			log.Printf("internal error: %v", svcErr)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": svcErr.Message})
			return
		}
		body := gin.H{"success": false, "error": svcErr.Message}
		if len(svcErr.Fields) > 0 {
			body["fields"] = svcErr.Fields
		}
		c.JSON(statusForKind(svcErr.Kind), body)
		return
	}

	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

func currentUID(c *gin.Context) string {
	uid, _ := c.Get("uid")
	s, _ := uid.(string)
	return s
}

func currentEmail(c *gin.Context) string {
	email, _ := c.Get("email")
	s, _ := email.(string)
	return s
}

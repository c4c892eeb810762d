package routes

import (
	"github.com/gin-gonic/gin"

	"nitrutsav-backend/controllers"
	"nitrutsav-backend/middleware"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	// Public routes
	router.POST("/auth/register", controllers.RegisterAdmin)
	router.POST("/auth/login", controllers.LoginAdmin)
	router.GET("/mun/fee", controllers.MunFee)
	router.POST("/seed", controllers.Seed)

	// Routes requiring a bearer identity token
	authed := router.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.GET("/auth/check", controllers.CheckAdmin)
	authed.GET("/auth/status", controllers.AuthStatus)

	authed.POST("/register", controllers.Register)

	authed.GET("/mun/check-registration", controllers.CheckMunRegistration)
	authed.POST("/mun/register", controllers.RegisterMun)
	authed.GET("/mun/draft", controllers.GetDraft)
	authed.PUT("/mun/draft", controllers.PutDraft)
	authed.DELETE("/mun/draft", controllers.DeleteDraft)
	authed.GET("/mun/wizard/resume", controllers.ResumeWizard)
	authed.POST("/mun/wizard/submit", controllers.SubmitWizardStep)

	authed.POST("/payment/verify", controllers.VerifyPayment)
	authed.GET("/payment/status", controllers.PaymentStatus)
	authed.POST("/mun/payment/verify", controllers.VerifyMunPayment)

	// Admin portal
	authed.GET("/admin/registrations", controllers.ListUsers)
	authed.GET("/admin/mun/registrations", controllers.ListMunRegistrations)
	authed.GET("/admin/mun/stats", controllers.MunStats)
	authed.GET("/admin/mun/teams", controllers.MunTeams)
	authed.POST("/admin/transactions/:id/verify", controllers.VerifyTransaction)

	return router
}

package main

import (
	"log"
	"os"

	"nitrutsav-backend/config"
	"nitrutsav-backend/models"
	"nitrutsav-backend/routes"
)

func main() {
	config.LoadConfig()
	config.ConnectDatabase()

	// Run migrations
	err := config.DB.AutoMigrate(
		&models.User{},
		&models.MunRegistration{},
		&models.Transaction{},
		&models.Admin{},
		&models.WizardDraft{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	log.Println("Database migrated successfully")

	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

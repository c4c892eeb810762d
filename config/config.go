package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the global database instance
var DB *gorm.DB
var JWTSecret []byte

// Registration fee amounts in INR. Deployment configuration, not
// business constants: override via MUN_FEE_COLLEGE / MUN_FEE_SCHOOL.
var MunFeeCollege = 1500
var MunFeeSchool = 1200

func LoadConfig() {
	// Load .env file
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	// Set JWT secret key from environment variable
	JWTSecret = []byte(os.Getenv("JWT_SECRET"))
	if len(JWTSecret) == 0 {
		log.Fatalf("JWT secret key not set")
	}

	if v := os.Getenv("MUN_FEE_COLLEGE"); v != "" {
		fee, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid MUN_FEE_COLLEGE: %v", err)
		}
		MunFeeCollege = fee
	}
	if v := os.Getenv("MUN_FEE_SCHOOL"); v != "" {
		fee, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid MUN_FEE_SCHOOL: %v", err)
		}
		MunFeeSchool = fee
	}
}

func ConnectDatabase() {
	// Load DB config from environment variables
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	var errDB error
	DB, errDB = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if errDB != nil {
		log.Fatalf("Error connecting to database: %v", errDB)
	}

	log.Println("Database connected successfully")
}

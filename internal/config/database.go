package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"labrecords/internal/models"
)

// Load reads .env (when present) so the Getenv helpers below see the values.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found – relying on env vars")
	}
}

// ConnectDB opens the Postgres connection from environment variables and
// migrates the schema. The handle is returned to the caller, not stored in a
// package variable.
func ConnectDB() (*gorm.DB, error) {
	host := Getenv("DB_HOST", "localhost")
	port := Getenv("DB_PORT", "5432")
	user := Getenv("DB_USER", "postgres")
	password := Getenv("DB_PASSWORD", "password")
	dbname := Getenv("DB_NAME", "labrecords")
	sslmode := Getenv("DB_SSLMODE", "disable")
	timezone := Getenv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.LabReport{}); err != nil {
		return nil, fmt.Errorf("auto-migration: %w", err)
	}

	return db, nil
}

// Getenv reads an environment variable or returns the provided default.
func Getenv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// JWTSecret returns the token signing secret.
func JWTSecret() string {
	return Getenv("JWT_SECRET", "supersecret")
}

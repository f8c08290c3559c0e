package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads one environment key, loading .env first when present. Keys in
// use: DATABASE_URL, JWT_SECRET, ADMIN_EMAIL/ADMIN_PASSWORD/ADMIN_FULL_NAME,
// PLATFORM_COMMISSION_RATE, CLOUDINARY_URL, BREVO_API_KEY, EMAIL_SENDER,
// EMAIL_SENDER_NAME, REDIS_ADDR/REDIS_PASSWORD/REDIS_DB, RABBITMQ_URL.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs to start. It is loaded once in
// main and never mutated afterwards.
type Config struct {
	Port          string
	MongoURL      string
	DBName        string
	SessionSecret string
	SessionMaxAge int // seconds
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}

	return Config{
		Port:          getEnv("PORT", "3000"),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "hospital_info"),
		SessionSecret: getEnv("SESSION_SECRET", "hospital_info_secret_key"),
		SessionMaxAge: getEnvInt("SESSION_MAX_AGE", 60*60*24),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Println("Invalid value for", key+":", v)
		return fallback
	}
	return n
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MongoURI       string
	DatabaseName   string
	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
// A config.env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load("config.env")

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:   getEnv("DATABASE_NAME", "mytodo"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		BcryptCost:     getEnvInt("BCRYPT_ROUNDS", 10),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config собирает настройки приложения из переменных окружения
type Config struct {
	Port          string
	MongoURL      string
	MongoDB       string
	CORSOrigins   string
	AuthRateLimit string
	Redis         RedisConfig
}

// LoadConfig читает .env (если есть) и переменные окружения
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return Config{
		Port:          getEnv("PORT", "10000"),
		MongoURL:      getEnv("MONGO_URL", ""),
		MongoDB:       getEnv("MONGO_DB", "oak_woods_db"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		AuthRateLimit: getEnv("AUTH_RATE_LIMIT", "20-M"),
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

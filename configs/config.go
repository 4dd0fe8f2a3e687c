package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"golang.org/x/crypto/bcrypt"
)

// Config carries the process-wide settings. It is loaded once in main and
// passed to the pieces that need it; nothing reads the environment after
// startup.
type Config struct {
	DBDriver   string
	DBSource   string
	Port       string
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int
	SeedDemo   bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBSource:   getEnv("DB_SOURCE", "file:foodtrucks.db?_fk=1"),
		Port:       getEnv("PORT", "4000"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		JWTTTL:     24 * time.Hour,
		BcryptCost: getEnvInt("BCRYPT_ROUNDS", bcrypt.DefaultCost),
		SeedDemo:   getEnv("SEED_DEMO", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

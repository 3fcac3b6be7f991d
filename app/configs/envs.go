package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	RedisAddr  string
	RedisDB    int
	SessionKey string
	AppAuthKey string
	AppEncKey  string
	CSRFKey    string
	MediaDir   string
	APP_ENV    string
	Pagination PaginationConfig
}

// PaginationConfig carries the per-listing page sizes. The numbers are
// presentation defaults, not protocol, so they stay overridable via env.
type PaginationConfig struct {
	Products   int
	Categories int
	Creates    int
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisDB:    envInt("REDIS_DB", 0),
		SessionKey: os.Getenv("SESSION_KEY"),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),
		CSRFKey:    os.Getenv("CSRF_KEY"),
		MediaDir:   envOr("MEDIA_DIR", "media"),
		APP_ENV:    os.Getenv("APP_ENV"),
		Pagination: PaginationConfig{
			Products:   envInt("PAGINATE_PRODUCTS", 9),
			Categories: envInt("PAGINATE_CATEGORIES", 15),
			Creates:    envInt("PAGINATE_CREATES", 6),
		},
	}

}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

var LoadENV = LoadEnv()

package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// CORS
	FrontendURL string

	// Auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// bcrypt hashes of the two role passwords; empty hash disables the role
	GestorPasswordHash    string
	CooperadoPasswordHash string

	// Import pipeline policy
	ImportBatchSize int
	ImportAtomic    bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "valex-backend")
	viper.SetDefault("GESTOR_PASSWORD_HASH", "")
	viper.SetDefault("COOPERADO_PASSWORD_HASH", "")
	viper.SetDefault("IMPORT_BATCH_SIZE", 100)
	viper.SetDefault("IMPORT_ATOMIC", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = normalizeDatabaseURL(viper.GetString("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.FrontendURL = viper.GetString("FRONTEND_URL")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GestorPasswordHash = viper.GetString("GESTOR_PASSWORD_HASH")
	cfg.CooperadoPasswordHash = viper.GetString("COOPERADO_PASSWORD_HASH")
	if cfg.GestorPasswordHash == "" {
		log.Println("Warning: GESTOR_PASSWORD_HASH not set. Manager login is disabled.")
	}

	cfg.ImportBatchSize = viper.GetInt("IMPORT_BATCH_SIZE")
	if cfg.ImportBatchSize <= 0 {
		cfg.ImportBatchSize = 100
	}
	cfg.ImportAtomic = viper.GetBool("IMPORT_ATOMIC")

	return cfg, nil
}

// normalizeDatabaseURL rewrites the heroku-style postgres:// scheme that some
// providers still hand out into the postgresql:// form pgx expects.
func normalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

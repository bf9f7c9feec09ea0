package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	JWTTTLMin   int
	CORSOrigin  string
	AppURL      string
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	EmailFrom   string
	CartEnabled bool
	Env         string
}

func Load(log *logrus.Logger) *Config {
	_ = godotenv.Load()

	ttl, err := strconv.Atoi(getEnv("JWT_TTL_MIN", "60"))
	if err != nil {
		ttl = 60
	}

	c := &Config{
		Port:        getEnv("PORT", "5000"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "shine-sparkle"),
		JWTSecret:   mustEnv(log, "JWT_SECRET"),
		JWTTTLMin:   ttl,
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:3000"),
		AppURL:      getEnv("APP_URL", "http://localhost:3000"),
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		EmailFrom:   getEnv("EMAIL_FROM", ""),
		CartEnabled: getEnv("CART_ENABLED", "true") != "false",
		Env:         getEnv("ENV", "dev"),
	}
	log.Infof("config loaded: env=%s port=%s cart_enabled=%t", c.Env, c.Port, c.CartEnabled)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(log *logrus.Logger, k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}

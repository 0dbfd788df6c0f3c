package config

import "os"

type Config struct {
	HTTPAddr      string
	AllowedOrigin string
	GelfAddr      string

	DatabasePath string

	RedisAddr     string
	RedisPassword string

	StorageEndpoint  string
	StorageRegion    string
	StorageBucket    string
	StorageAccessKey string
	StorageSecretKey string
	StorageSecure    bool

	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SenderAddress  string
	CareersAddress string

	IntranetSecret string

	ThrottleRPS   int
	ThrottleBurst int
}

func Load() *Config {
	return &Config{
		HTTPAddr:      getEnv("SITE_ADDR", ":8080"),
		AllowedOrigin: getEnv("SITE_ALLOWED_ORIGIN", "https://www.strataworks.com"),
		GelfAddr:      getEnv("SITE_GELF_ADDR", ""),

		DatabasePath: getEnv("SITE_DB_PATH", "site.db"),

		RedisAddr:     getEnv("SITE_REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("SITE_REDIS_PASSWORD", ""),

		StorageEndpoint:  getEnv("SITE_STORAGE_ENDPOINT", "127.0.0.1:9000"),
		StorageRegion:    getEnv("SITE_STORAGE_REGION", "us-east-1"),
		StorageBucket:    getEnv("SITE_STORAGE_BUCKET", "strataworks-careers"),
		StorageAccessKey: getEnv("SITE_STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("SITE_STORAGE_SECRET_KEY", ""),
		StorageSecure:    getEnv("SITE_STORAGE_SECURE", "true") == "true",

		SMTPHost:       getEnv("SITE_SMTP_HOST", "127.0.0.1"),
		SMTPPort:       getEnvInt("SITE_SMTP_PORT", 587),
		SMTPUsername:   getEnv("SITE_SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SITE_SMTP_PASSWORD", ""),
		SenderAddress:  getEnv("SITE_SENDER_ADDRESS", "no-reply@strataworks.com"),
		CareersAddress: getEnv("SITE_CAREERS_ADDRESS", "careers@strataworks.com"),

		IntranetSecret: getEnv("SITE_INTRANET_SECRET", "strataworks-dev-secret-change-me"),

		ThrottleRPS:   getEnvInt("SITE_THROTTLE_RPS", 10),
		ThrottleBurst: getEnvInt("SITE_THROTTLE_BURST", 20),
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
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}

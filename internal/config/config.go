package config

import (
	"os"
	"strconv"
	"time"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendMySQL  = "mysql"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	StorageBackend string
	MySQLDSN       string
	ProbeTimeout   time.Duration
	DataDir        string
	UploadDir      string
	SessionSecret  string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendMySQL),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/foodtruck?charset=utf8mb4&parseTime=True&loc=Local"),
		ProbeTimeout:   time.Duration(getEnvInt("DB_PROBE_TIMEOUT_SECONDS", 3)) * time.Second,
		DataDir:        getEnv("DATA_DIR", "data"),
		UploadDir:      getEnv("UPLOAD_DIR", "public/uploads"),
		SessionSecret:  getEnv("SESSION_SECRET", "change-me"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
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

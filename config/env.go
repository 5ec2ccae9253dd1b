package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNotConfigured is returned by optional backends whose env vars are unset.
var ErrNotConfigured = errors.New("not configured")

// Settings is the process configuration read from the environment.
type Settings struct {
	Port        string
	GinMode     string
	LogLevel    string
	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
	AdminEmails []string
	CORSOrigins []string
	GCSBucket   string
	GCSPublic   bool
	LockTTL     time.Duration
	LockWait    time.Duration
}

func Load() Settings {
	return Settings{
		Port:        getEnv("PORT", "5000"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "facultyportal"),
		JWTTTL:      getDuration("JWT_TTL", 24*time.Hour),
		AdminEmails: getList("ADMIN_EMAILS"),
		CORSOrigins: getList("CORS_ORIGINS"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
		GCSPublic:   getBool("GCS_PUBLIC", false),
		LockTTL:     getDuration("MARKS_LOCK_TTL", 15*time.Second),
		LockWait:    getDuration("MARKS_LOCK_WAIT", 5*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getList(key string) []string {
	var out []string
	for _, p := range strings.Split(os.Getenv(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

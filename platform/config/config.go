// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// GeminiConfig provides settings for the generative AI capability.
type GeminiConfig interface {
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetAnalysisTimeout() time.Duration
}

// OCRConfig provides settings for the optional text-extraction service.
// When no base URL is configured the analysis pipeline sends the label
// image to the model directly instead of running OCR first.
type OCRConfig interface {
	GetOCRBaseURL() string
	GetOCRAPIKey() string
	GetOCRTimeout() time.Duration
	IsOCREnabled() bool
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketUploads() string
	IsMinIOEnabled() bool
}

// UploadConfig provides settings for upload validation and local staging.
type UploadConfig interface {
	GetMaxUploadBytes() int64
	GetLocalUploadDir() string
}

// RateLimitConfig provides settings for per-client rate limiting.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// Config holds all application configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	GeminiAPIKey    string
	GeminiModel     string
	AnalysisTimeout time.Duration

	OCRBaseURL string
	OCRAPIKey  string
	OCRTimeout time.Duration

	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinioBucketUploads string

	MaxUploadBytes int64
	LocalUploadDir string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment, optionally seeded by a .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AnalysisTimeout:    mustDuration(getEnv("ANALYSIS_TIMEOUT", "60s")),
		OCRBaseURL:         getEnv("OCR_BASE_URL", ""),
		OCRAPIKey:          getEnv("OCR_API_KEY", ""),
		OCRTimeout:         mustDuration(getEnv("OCR_TIMEOUT", "30s")),
		MinIOEndpoint:      getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketUploads: getEnv("MINIO_BUCKET_UPLOADS", "label-uploads"),
		MaxUploadBytes:     mustInt64(getEnv("MAX_UPLOAD_BYTES", "10485760")),
		LocalUploadDir:     getEnv("LOCAL_UPLOAD_DIR", "uploads"),
		RateLimitRPS:       mustFloat(getEnv("RATE_LIMIT_RPS", "1")),
		RateLimitBurst:     int(mustInt64(getEnv("RATE_LIMIT_BURST", "5"))),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.AnalysisTimeout <= 0 {
		return nil, fmt.Errorf("ANALYSIS_TIMEOUT must be a positive duration")
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

// HTTPConfig implementation.
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// GeminiConfig implementation.
func (c *Config) GetGeminiAPIKey() string           { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string            { return c.GeminiModel }
func (c *Config) GetAnalysisTimeout() time.Duration { return c.AnalysisTimeout }

// OCRConfig implementation.
func (c *Config) GetOCRBaseURL() string        { return c.OCRBaseURL }
func (c *Config) GetOCRAPIKey() string         { return c.OCRAPIKey }
func (c *Config) GetOCRTimeout() time.Duration { return c.OCRTimeout }
func (c *Config) IsOCREnabled() bool           { return c.OCRBaseURL != "" }

// MinIOConfig implementation.
func (c *Config) GetMinIOEndpoint() string      { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string     { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string     { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool          { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketUploads() string { return c.MinioBucketUploads }
func (c *Config) IsMinIOEnabled() bool          { return c.MinIOEndpoint != "" }

// UploadConfig implementation.
func (c *Config) GetMaxUploadBytes() int64  { return c.MaxUploadBytes }
func (c *Config) GetLocalUploadDir() string { return c.LocalUploadDir }

// RateLimitConfig implementation.
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

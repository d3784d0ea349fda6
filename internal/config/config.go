package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/suappstudio/matchday/internal/platform/logging"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config stores runtime configuration for the service.
type Config struct {
	Environment            string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	DBURL                  string
	UploadDir              string
	MediaUploadWorkers     int
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryTimeout      time.Duration
	CORSAllowedOrigins     []string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
	LogLevel               logging.Level
}

func Load() (Config, error) {
	environment, err := parseEnvironment(getEnv("ENVIRONMENT", EnvDevelopment))
	if err != nil {
		return Config{}, err
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	port := strings.TrimSpace(getEnv("PORT", "8000"))
	if _, err := strconv.Atoi(port); err != nil {
		return Config{}, fmt.Errorf("parse PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_READ_TIMEOUT must be > 0")
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_WRITE_TIMEOUT must be > 0")
	}

	mediaUploadWorkers, err := getEnvAsInt("MEDIA_UPLOAD_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse MEDIA_UPLOAD_WORKERS: %w", err)
	}
	if mediaUploadWorkers < 1 {
		return Config{}, fmt.Errorf("MEDIA_UPLOAD_WORKERS must be >= 1")
	}

	cloudinaryTimeout, err := time.ParseDuration(getEnv("CLOUDINARY_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CLOUDINARY_TIMEOUT: %w", err)
	}
	if cloudinaryTimeout <= 0 {
		return Config{}, fmt.Errorf("CLOUDINARY_TIMEOUT must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	serviceName := getEnv("APP_SERVICE_NAME", "matchday-api")

	return Config{
		Environment:            environment,
		ServiceName:            serviceName,
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               ":" + port,
		DBURL:                  dbURL,
		UploadDir:              getEnv("UPLOAD_DIR", "uploads/players"),
		MediaUploadWorkers:     mediaUploadWorkers,
		CloudinaryCloudName:    strings.TrimSpace(getEnv("CLOUDINARY_CLOUD_NAME", "")),
		CloudinaryAPIKey:       strings.TrimSpace(getEnv("CLOUDINARY_API_KEY", "")),
		CloudinaryAPISecret:    strings.TrimSpace(getEnv("CLOUDINARY_API_SECRET", "")),
		CloudinaryTimeout:      cloudinaryTimeout,
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

// CloudinaryConfigured reports whether every Cloudinary credential is set.
func (c Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func parseEnvironment(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDevelopment, EnvProduction:
		return value, nil
	default:
		return "", fmt.Errorf("invalid ENVIRONMENT %q: valid values are %s, %s", v, EnvDevelopment, EnvProduction)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

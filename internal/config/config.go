package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App         AppConfig
	Spreadsheet SpreadsheetConfig
	AI          AIConfig
	JWT         JWTConfig
	Export      ExportConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// SpreadsheetConfig points at the Google Sheet that owns all records.
// The application never holds an authoritative copy: every read goes
// back to this document.
type SpreadsheetConfig struct {
	SpreadsheetID   string
	CredentialsFile string // service account JSON key
}

type AIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type ExportConfig struct {
	FontPath string // TTF used for PDF rendering; built-in font on load failure
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Minutes API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Spreadsheet: SpreadsheetConfig{
			SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		},
		AI: AIConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature: getEnvFloat("GEMINI_TEMPERATURE", 0.3),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 12),
		},
		Export: ExportConfig{
			FontPath: getEnv("PDF_FONT_PATH", "NanumGothic.ttf"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable
func (c *Config) Validate() error {
	if c.Spreadsheet.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID must be set")
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	// A missing AI key is not fatal: drafting degrades to an inline
	// placeholder and manual entry keeps working.
	if c.AI.APIKey == "" {
		fmt.Println("WARNING: GEMINI_API_KEY not set - AI drafting will return a placeholder")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

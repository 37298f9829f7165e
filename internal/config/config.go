// Package config provides helpers for reading royaltyflow configuration
// through Viper, covering both config-file keys and environment variables.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return the OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// GeminiAPIKey resolves the Gemini API key used by the extraction
// collaborator. GEMINI_API_KEY wins; GOOGLE_API_KEY is a fallback for
// environments already configured for other Google tooling.
func GeminiAPIKey() string {
	if key := GetString("GEMINI_API_KEY"); key != "" {
		return key
	}
	return GetString("GOOGLE_API_KEY")
}

// TitleColumn returns the configured statement title column override, if any.
func TitleColumn() string {
	return viper.GetString("statement.title_column")
}

// PayableColumn returns the configured statement payable column override, if any.
func PayableColumn() string {
	return viper.GetString("statement.payable_column")
}

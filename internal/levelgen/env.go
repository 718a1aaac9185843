package levelgen

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// API key variables, in lookup order.
var apiKeyVars = []string{"GEMINI_API_KEY", "API_KEY"}

// LoadEnv loads .env style files into the process environment.
// Missing files are ignored; variables already set are never overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// APIKeyFromEnv returns the first non-empty API key variable.
func APIKeyFromEnv() string {
	for _, name := range apiKeyVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads the nearest .env file walking up from the working directory.
// It reports whether a file was found; a missing file is not an error.
func LoadDotEnv() bool {
	dir, err := os.Getwd()
	if err != nil {
		return false
	}

	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path) == nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

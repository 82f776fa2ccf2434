package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Variables read by the platformer binary.
const (
	LevelVar   = "PLATFORMER_LEVEL"
	ConfigVar  = "PLATFORMER_CONFIG"
	WorkersVar = "PLATFORMER_WORKERS"
)

// Load reads the given file (e.g. ".env") into the process environment. Variables already set
// in the environment win. The file may be missing; that is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// String returns the variable's value, or fallback when unset or empty.
func String(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Int returns the variable parsed as an int, or fallback when unset. A set but malformed
// value is an error.
func Int(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s=%q: %w", key, v, err)
	}
	return n, nil
}

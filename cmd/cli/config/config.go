package config

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultAPIURL = "http://localhost:8080"

const tokenFileName = ".recipebox_token"

// APIURL returns the base URL for the RecipeBox API.
// It can be overridden with the RECIPEBOX_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("RECIPEBOX_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// SaveToken stores the JWT token in the user's home directory for later CLI calls.
func SaveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0600)
}

// ReadToken returns the locally stored JWT token, or an error when not logged in.
func ReadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// DeleteToken removes the stored token. Missing file is not an error.
func DeleteToken() error {
	err := os.Remove(tokenPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func tokenPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, tokenFileName)
}

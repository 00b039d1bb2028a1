package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvDir   = "LOCALEPATCH_DIR"
	EnvTable = "LOCALEPATCH_TABLE"

	DefaultDir = "public/locales"
)

// loadDotEnv reads ./.env if present.  Variables already set in the
// environment take precedence.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		theLog.Warn("could not load .env", "error", err)
	}
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

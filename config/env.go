package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by ApplyEnv.
const (
	EnvDictionary         = "WORDGRID_DICTIONARY"
	EnvResultDir          = "WORDGRID_RESULT_DIR"
	EnvLocale             = "WORDGRID_LOCALE"
	EnvPocketBaseURL      = "WORDGRID_POCKETBASE_URL"
	EnvPocketBaseEmail    = "WORDGRID_POCKETBASE_EMAIL"
	EnvPocketBasePassword = "WORDGRID_POCKETBASE_PASSWORD"
	EnvPocketBaseColl     = "WORDGRID_POCKETBASE_COLLECTION"
)

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none)
// into the process environment. Variables already set win. A missing file is
// not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnv overlays the WORDGRID_* variables found by lookup onto cfg.
// Blank values are ignored.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&cfg.DictionaryPath, EnvDictionary)
	set(&cfg.OutputDir, EnvResultDir)
	set(&cfg.Locale, EnvLocale)
	set(&cfg.PocketBaseURL, EnvPocketBaseURL)
	set(&cfg.PocketBaseEmail, EnvPocketBaseEmail)
	set(&cfg.PocketBasePassword, EnvPocketBasePassword)
	set(&cfg.PocketBaseCollection, EnvPocketBaseColl)
}

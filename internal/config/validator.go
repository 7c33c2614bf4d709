package config

import (
	"fmt"
	"net/url"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared
func ValidateEnv() error {
	schemaVersion, set := os.LookupEnv(EnvSchemaVersion)
	if !set {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks the loaded configuration and returns warnings
// for non-critical issues
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.CatalogDir != "" {
		if info, err := os.Stat(cfg.CatalogDir); err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("CATALOG_DIR %q is not a readable directory - catalog loading will fail", cfg.CatalogDir))
		}
	}

	if u, err := url.Parse(cfg.ProfileAPIBaseURL); err == nil && u.Scheme != "https" {
		warnings = append(warnings, fmt.Sprintf("PROFILE_API_BASE_URL uses %s - player records are fetched unencrypted", u.Scheme))
	}

	return warnings, nil
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// jobIntervalVars are scheduler intervals where zero turns the job off
var jobIntervalVars = []struct {
	key    string
	effect string
}{
	{"AUTO_SCORE_INTERVAL", "finished matches will only be scored through the admin API"},
	{"LEADERBOARD_RECOMPUTE_INTERVAL", "leaderboards will only refresh on scoring events"},
	{"EVENT_LOG_CLEANUP_INTERVAL", "the event log will grow without bound"},
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (insecure example values, disabled jobs)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv("CURRENT_ROUND_OVERRIDE") != "" {
		warnings = append(warnings, "CURRENT_ROUND_OVERRIDE is set - the current round will not follow the schedule")
	}

	for _, v := range jobIntervalVars {
		if os.Getenv(v.key) != "" && getEnvAsDuration(v.key, time.Second) <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s disables its job - %s", v.key, v.effect))
		}
	}

	return warnings, nil
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for _, envVar := range RequiredEnvVars {
		t.Setenv(envVar, "test_value")
	}
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")
	os.Unsetenv("ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_NAME", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestValidateEnv_AllSet(t *testing.T) {
	setRequiredEnv(t)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("CURRENT_ROUND_OVERRIDE", "3")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "CURRENT_ROUND_OVERRIDE")
}

func TestValidateEnvWithWarnings_DisabledJobs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("API_KEY", "k")
	t.Setenv("CURRENT_ROUND_OVERRIDE", "")
	os.Unsetenv("CURRENT_ROUND_OVERRIDE")
	t.Setenv("AUTO_SCORE_INTERVAL", "0")
	t.Setenv("LEADERBOARD_RECOMPUTE_INTERVAL", "15m")
	t.Setenv("EVENT_LOG_CLEANUP_INTERVAL", "0s")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "AUTO_SCORE_INTERVAL")
	assert.Contains(t, warnings[1], "EVENT_LOG_CLEANUP_INTERVAL")
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset", nil, 42},
		{"valid", strPtr("100"), 100},
		{"negative", strPtr("-10"), -10},
		{"zero", strPtr("0"), 0},
		{"invalid", strPtr("not-a-number"), 42},
		{"float", strPtr("42.5"), 42},
		{"empty", strPtr(""), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", "")
			if tt.value == nil {
				os.Unsetenv("TEST_INT_VAR")
			} else {
				t.Setenv("TEST_INT_VAR", *tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{"unset", nil, 5 * time.Minute},
		{"minutes", strPtr("10m"), 10 * time.Minute},
		{"seconds", strPtr("30s"), 30 * time.Second},
		{"complex", strPtr("1h30m45s"), time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", strPtr("500ms"), 500 * time.Millisecond},
		{"invalid", strPtr("not-a-duration"), 5 * time.Minute},
		{"no unit", strPtr("100"), 5 * time.Minute},
		{"empty", strPtr(""), 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", "")
			if tt.value == nil {
				os.Unsetenv("TEST_DURATION_VAR")
			} else {
				t.Setenv("TEST_DURATION_VAR", *tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func strPtr(s string) *string { return &s }

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", " 10.0.0.1, ,10.0.0.2 ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList("TEST_LIST_VAR"))

	t.Setenv("TEST_LIST_VAR", "")
	assert.Nil(t, getEnvAsList("TEST_LIST_VAR"))
}

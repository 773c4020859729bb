package main

import (
	"fmt"
	"net/http"
	"time"
)

const (
	healthTimeout   = 5 * time.Second
	slowHealthAfter = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check the running server's readiness endpoint"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := getEnv("APP_URL", "http://localhost:8080")
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: healthTimeout}
	start := time.Now()
	resp, err := client.Get(baseURL + "/readyz")
	if err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	defer resp.Body.Close()
	duration := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("readyz returned %d", resp.StatusCode)
	}

	if duration > slowHealthAfter {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}

package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"
)

const DefaultHealthCheckTimeout = 30 * time.Second

// TestEnv describes the externally running server the integration tests
// talk to. Tests are skipped unless RUN_INTEGRATION_TESTS is set, so unit
// runs never require a live server.
type TestEnv struct {
	ServerURL  string
	ServerPort string
	Email      string
	Password   string
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("set RUN_INTEGRATION_TESTS to run integration tests against a live server")
	}

	serverPort := getEnv("TEST_SERVER_PORT", "8080")
	return &TestEnv{
		ServerURL:  getEnv("TEST_SERVER_URL", fmt.Sprintf("http://localhost:%s", serverPort)),
		ServerPort: serverPort,
		Email:      getEnv("TEST_USER_EMAIL", "employee@innovatecorp.com"),
		Password:   getEnv("TEST_USER_PASSWORD", "password123"),
	}
}

// Setup waits for the server and returns an authenticated client.
func (e *TestEnv) Setup(t *testing.T) *Client {
	t.Helper()

	client := NewClient(e.ServerURL)
	client.WaitForHealthy(t, DefaultHealthCheckTimeout)
	client.Login(t, e.Email, e.Password)
	return client
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

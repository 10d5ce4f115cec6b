package herald_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for herald end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "herald-test:latest"

	adminEmail    = "admin@herald.test"
	adminPassword = "Admin123!Admin123!"
)

// TestMain builds the Docker image once before all tests and cleans it
// up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building herald Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up herald Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/herald/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupHeraldContainer starts the service in a container and returns
// the base URL. Rate limits are raised so rapid test requests do not
// trip the production defaults.
func setupHeraldContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"HERALD_DATABASE_FILE":  "/tmp/herald.db",
			"HERALD_PEPPER_FILE":    "/tmp/pepper",
			"HERALD_SECRET_FILE":    "/tmp/herald.secret",
			"HERALD_ISSUER":         "herald-test",
			"HERALD_ADMIN_EMAIL":    adminEmail,
			"HERALD_ADMIN_PASSWORD": adminPassword,
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupHeraldContainerWithDefaultRateLimits starts the service with
// production rate limits, for testing that limiting actually works.
func setupHeraldContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"HERALD_DATABASE_FILE": "/tmp/herald.db",
			"HERALD_PEPPER_FILE":   "/tmp/pepper",
			"HERALD_SECRET_FILE":   "/tmp/herald.secret",
			"HERALD_ISSUER":        "herald-test",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signupUser registers a fresh account and returns its session.
func signupUser(t *testing.T, client *heraldsdk.SDKClient, email string) *heraldsdk.Session {
	t.Helper()

	session, err := client.Signup(t.Context(), heraldsdk.SignupRequest{
		Email:    email,
		Password: "a long test password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	return session
}

// assertHealthy verifies a health response came back ok.
func assertHealthy(t *testing.T, health *heraldsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError verifies err is an APIError with the given code.
func assertAPIError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)

	apiErr, ok := err.(*heraldsdk.APIError)
	require.True(t, ok, "expected *heraldsdk.APIError, got %T: %v", err, err)
	require.Equal(t, code, apiErr.Code)
}

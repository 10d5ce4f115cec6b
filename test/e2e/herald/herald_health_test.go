package herald_test

import (
	"testing"

	"github.com/heraldhq/herald/pkg/heraldsdk"
)

// TestLivezEndpoint verifies the liveness check answers on a fresh
// container.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check, which includes the
// database ping.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)
}

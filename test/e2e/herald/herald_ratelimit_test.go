package herald_test

import (
	"context"
	"testing"

	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies /login enforces the strict
// per-IP limit (5 req/min) used to slow brute force attempts.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupHeraldContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, "nobody@herald.test", "wrong password")
		if i < 5 {
			// First 5 should fail on credentials, not on the limiter.
			assertAPIError(t, err, heraldsdk.ErrorCodeInvalidCredentials)
		} else {
			lastErr = err
		}
	}

	require.Error(t, lastErr)
	apiErr, ok := lastErr.(*heraldsdk.APIError)
	require.True(t, ok, "expected *heraldsdk.APIError, got %T: %v", lastErr, lastErr)
	require.Equal(t, 429, apiErr.StatusCode, "should be rate limited after 5 requests")
}

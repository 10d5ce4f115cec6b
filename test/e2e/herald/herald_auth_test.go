package herald_test

import (
	"testing"
	"time"

	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/stretchr/testify/require"
)

// TestSignupLoginFlow covers the full credential round trip: register,
// verify the token works, then log in again for a fresh session.
func TestSignupLoginFlow(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)

	session, err := client.Signup(t.Context(), heraldsdk.SignupRequest{
		Email:    "alice@herald.test",
		Password: "a long test password",
		Name:     "Alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	require.Equal(t, "alice@herald.test", session.User().Email)
	require.Equal(t, "user", session.User().Role)
	require.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt(), 30*time.Second)

	user, err := session.Verify(t.Context())
	require.NoError(t, err)
	require.Equal(t, "alice@herald.test", user.Email)

	login, err := client.Login(t.Context(), "alice@herald.test", "a long test password")
	require.NoError(t, err)
	require.Equal(t, session.User().ID, login.User().ID)
	require.NotEqual(t, session.Token(), login.Token())
}

// TestSignupDuplicateEmail verifies a second signup with the same
// email is rejected.
func TestSignupDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	signupUser(t, client, "bob@herald.test")

	_, err := client.Signup(t.Context(), heraldsdk.SignupRequest{
		Email:    "bob@herald.test",
		Password: "a different password",
	})
	assertAPIError(t, err, heraldsdk.ErrorCodeDuplicateUser)
}

// TestLoginWrongPassword verifies bad credentials are rejected with
// the same error as an unknown email.
func TestLoginWrongPassword(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	signupUser(t, client, "carol@herald.test")

	_, err := client.Login(t.Context(), "carol@herald.test", "wrong password")
	assertAPIError(t, err, heraldsdk.ErrorCodeInvalidCredentials)

	_, err = client.Login(t.Context(), "nobody@herald.test", "wrong password")
	assertAPIError(t, err, heraldsdk.ErrorCodeInvalidCredentials)
}

// TestVerifyRejectsBadTokens checks the token verification contract:
// no token at all is 401 auth_required, a garbage token is 400
// invalid_token.
func TestVerifyRejectsBadTokens(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)

	empty := client.NewSessionFromToken("", time.Now().Add(time.Hour))
	_, err := empty.Verify(t.Context())
	assertAPIError(t, err, heraldsdk.ErrorCodeAuthRequired)

	garbage := client.NewSessionFromToken("not.a.token", time.Now().Add(time.Hour))
	_, err = garbage.Verify(t.Context())
	assertAPIError(t, err, heraldsdk.ErrorCodeInvalidToken)
}

// TestProfileUpdate verifies display fields change and identity fields
// do not.
func TestProfileUpdate(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	session := signupUser(t, client, "dave@herald.test")

	updated, err := session.UpdateProfile(t.Context(), heraldsdk.ProfileUpdateRequest{
		Name:          "Dave",
		Mobile:        "+61400000000",
		Bio:           "night shift",
		AvailableFrom: "22:00",
		AvailableTo:   "06:00",
	})
	require.NoError(t, err)
	require.Equal(t, "Dave", updated.Name)
	require.Equal(t, "+61400000000", updated.Mobile)
	require.Equal(t, "dave@herald.test", updated.Email)
	require.Equal(t, "user", updated.Role)

	// The cached session user tracks the server response.
	require.Equal(t, "Dave", session.User().Name)
}

// TestAdminBootstrap verifies the seeded admin account can log in and
// carries the admin role.
func TestAdminBootstrap(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)

	admin, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.Equal(t, "admin", admin.User().Role)
}

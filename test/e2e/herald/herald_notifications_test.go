package herald_test

import (
	"testing"

	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/stretchr/testify/require"
)

// TestNotificationFanOut sends to two registered users and one unknown
// email and checks the delivery report.
func TestNotificationFanOut(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	sender := signupUser(t, client, "sender@herald.test")
	alice := signupUser(t, client, "alice@herald.test")
	bob := signupUser(t, client, "bob@herald.test")

	result, err := sender.SendNotification(t.Context(), heraldsdk.SendNotificationRequest{
		Message:    "deploy starting in five",
		Recipients: []string{"alice@herald.test", "bob@herald.test", "ghost@herald.test"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Notification.ID)
	require.Equal(t, "sender@herald.test", result.Notification.SenderEmail)
	require.ElementsMatch(t,
		[]string{alice.User().ID, bob.User().ID},
		result.DeliveryReport.Delivered)
	require.Empty(t, result.DeliveryReport.Failed)

	inbox, err := alice.ListNotifications(t.Context())
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.Equal(t, "deploy starting in five", inbox[0].Message)
	require.Equal(t, "delivered", inbox[0].Status)
	require.NotNil(t, inbox[0].DeliveredAt)
}

// TestCriticalNotificationsListedFirst sends a mix of critical and
// routine notifications and checks inbox ordering.
func TestCriticalNotificationsListedFirst(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	sender := signupUser(t, client, "sender@herald.test")
	reader := signupUser(t, client, "reader@herald.test")

	for _, msg := range []struct {
		text     string
		critical bool
	}{
		{"routine one", false},
		{"everything is on fire", true},
		{"routine two", false},
	} {
		_, err := sender.SendNotification(t.Context(), heraldsdk.SendNotificationRequest{
			Message:    msg.text,
			Recipients: []string{"reader@herald.test"},
			IsCritical: msg.critical,
		})
		require.NoError(t, err)
	}

	inbox, err := reader.ListNotifications(t.Context())
	require.NoError(t, err)
	require.Len(t, inbox, 3)
	require.Equal(t, "everything is on fire", inbox[0].Message)
	require.True(t, inbox[0].IsCritical)
	require.Equal(t, "routine one", inbox[1].Message)
	require.Equal(t, "routine two", inbox[2].Message)
}

// TestEmptyMessageRejected verifies the server refuses a blank
// notification body.
func TestEmptyMessageRejected(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	sender := signupUser(t, client, "sender@herald.test")

	_, err := sender.SendNotification(t.Context(), heraldsdk.SendNotificationRequest{
		Message:    "   ",
		Recipients: []string{"sender@herald.test"},
	})
	assertAPIError(t, err, heraldsdk.ErrorCodeInvalidRequest)
}

// TestAdminBroadcast verifies the admin route works for the seeded
// admin and rejects regular users with 403.
func TestAdminBroadcast(t *testing.T) {
	baseURL, cleanup := setupHeraldContainer(t)
	defer cleanup()

	client := heraldsdk.NewSDKClient(baseURL)
	user := signupUser(t, client, "user@herald.test")

	_, err := user.BroadcastNotification(t.Context(), heraldsdk.SendNotificationRequest{
		Message:    "not allowed",
		Recipients: []string{"user@herald.test"},
	})
	assertAPIError(t, err, heraldsdk.ErrorCodeForbidden)

	admin, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)

	result, err := admin.BroadcastNotification(t.Context(), heraldsdk.SendNotificationRequest{
		Message:    "scheduled maintenance tonight",
		Recipients: []string{"user@herald.test"},
		IsCritical: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{user.User().ID}, result.DeliveryReport.Delivered)

	inbox, err := user.ListNotifications(t.Context())
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.True(t, inbox[0].IsCritical)
}

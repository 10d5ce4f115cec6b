/*
Package heraldsdk provides a client SDK for the herald notification service.

# Overview

The package is organized around two main types:

  - SDKClient: unauthenticated operations, and the signup/login calls
    that create sessions
  - Session: authenticated operations, holding the bearer token and the
    current user together

Create an SDKClient to reach public endpoints and authenticate:

	client := heraldsdk.NewSDKClient("https://herald.example.com")

	// Check service health
	health, err := client.Readyz(ctx)

	// Register, or log into an existing account
	session, err := client.Signup(ctx, heraldsdk.SignupRequest{
		Email:    "alice@example.com",
		Password: "a long password",
	})
	session, err = client.Login(ctx, "alice@example.com", "a long password")

Use the Session for everything that needs a token:

	// Confirm the token is still accepted, refresh the cached user
	user, err := session.Verify(ctx)

	// Edit display fields (email, password, and role are immutable)
	user, err = session.UpdateProfile(ctx, heraldsdk.ProfileUpdateRequest{
		Name:   "Alice",
		Mobile: "+61400000000",
	})

	// Send to specific users by email
	result, err := session.SendNotification(ctx, heraldsdk.SendNotificationRequest{
		Message:    "deploy starting",
		Recipients: []string{"bob@example.com"},
	})

	// Read the inbox; critical notifications come first and everything
	// returned is marked delivered
	inbox, err := session.ListNotifications(ctx)

Tokens expire one hour after issue and there is no refresh flow. When a
request fails with an expired-token error, log in again for a fresh
session.

# Error Handling

API failures come back as *APIError values carrying the HTTP status and
the machine-readable code the server returned:

	_, err := session.BroadcastNotification(ctx, req)
	var apiErr *heraldsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == heraldsdk.ErrorCodeForbidden {
		// not an admin
	}
*/
package heraldsdk

package http

import (
	"errors"
	"net/http"

	"github.com/heraldhq/herald/internal/herald/service"
	"github.com/heraldhq/herald/internal/herald/store"
	"github.com/heraldhq/herald/pkg/heraldsdk"
	"github.com/heraldhq/herald/pkg/httpx"
	"github.com/heraldhq/herald/pkg/slogx"
)

type SendNotificationHandler struct {
	NotificationService *service.NotificationService
}

// ServeHTTP persists a notification and fans it out to the users
// behind the requested emails. The same handler serves both the user
// and admin routes; the admin gate lives in the route chain.
func (h *SendNotificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	senderID := httpx.UserIDFromContext(ctx)
	if senderID == "" {
		heraldsdk.ErrAuthRequired.WriteError(w)
		return
	}

	var req heraldsdk.SendNotificationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		heraldsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	notification, report, err := h.NotificationService.Send(
		ctx, senderID, req.Message, req.Recipients, req.IsCritical)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			heraldsdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, store.ErrNotFound):
			heraldsdk.ErrAuthRequired.WriteError(w)
		default:
			log.Error("notification send failed", "sender_id", senderID, "err", err)
			heraldsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, heraldsdk.SendNotificationResponse{
		Notification:   toSDKNotification(notification),
		DeliveryReport: toSDKDeliveryReport(report),
	})
}

type ListNotificationsHandler struct {
	NotificationService *service.NotificationService
}

// ServeHTTP returns the caller's inbox, critical notifications first.
// Listing marks the returned notifications delivered.
func (h *ListNotificationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		heraldsdk.ErrAuthRequired.WriteError(w)
		return
	}

	notifications, err := h.NotificationService.ListForUser(ctx, userID)
	if err != nil {
		log.Error("inbox listing failed", "user_id", userID, "err", err)
		heraldsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]heraldsdk.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toSDKNotification(n))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, heraldsdk.ListNotificationsResponse{
		Notifications: out,
	})
}

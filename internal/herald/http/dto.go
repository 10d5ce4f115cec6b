package http

import (
	"github.com/heraldhq/herald/internal/herald/domain"
	"github.com/heraldhq/herald/pkg/heraldsdk"
)

func toSDKUser(u domain.User) heraldsdk.User {
	return heraldsdk.User{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		Name:          u.Name,
		Mobile:        u.Mobile,
		Bio:           u.Bio,
		AvailableFrom: u.AvailableFrom,
		AvailableTo:   u.AvailableTo,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toSDKNotification(n domain.Notification) heraldsdk.Notification {
	return heraldsdk.Notification{
		ID:          n.ID,
		Message:     n.Message,
		SenderID:    n.SenderID,
		SenderEmail: n.SenderEmail,
		Recipients:  n.Recipients,
		Status:      n.Status,
		IsCritical:  n.IsCritical,
		CreatedAt:   n.CreatedAt,
		DeliveredAt: n.DeliveredAt,
	}
}

func toSDKDeliveryReport(r domain.DeliveryReport) heraldsdk.DeliveryReport {
	return heraldsdk.DeliveryReport{
		Delivered: r.Delivered,
		Failed:    r.Failed,
	}
}

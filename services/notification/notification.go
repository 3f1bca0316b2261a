package notification

import (
	"context"

	"go.uber.org/zap"
)

// NotificationService delivers guest-facing follow-up messages.
type NotificationService interface {
	SendGuestNotification(ctx context.Context, email, subject, body string) error
}

// LogNotificationService records notifications in the service log. Stands in
// until a mail provider is wired to the front desk.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) SendGuestNotification(ctx context.Context, email, subject, body string) error {
	s.Logger.Info("guest notification",
		zap.String("email", email),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}

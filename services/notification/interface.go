package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Sender is the part of the FCM client used here. *messaging.Client
// satisfies it.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService alerts staff about new visitor submissions.
type NotificationService interface {
	NotifyStaff(ctx context.Context, title, body string, data map[string]string) error
}

// DefaultNotificationService publishes to a single FCM topic that staff
// devices subscribe to.
type DefaultNotificationService struct {
	sender Sender
	topic  string
	logger *zap.Logger
}

// NewNotificationService returns a topic publisher. With a nil sender or an
// empty topic it returns a service that only logs.
func NewNotificationService(sender Sender, topic string, logger *zap.Logger) NotificationService {
	if sender == nil || topic == "" {
		return noopNotificationService{logger: logger}
	}
	return &DefaultNotificationService{sender: sender, topic: topic, logger: logger}
}

// NotifyStaff sends a push to the staff topic.
func (s *DefaultNotificationService) NotifyStaff(ctx context.Context, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("NotifyStaff: failed to send FCM message: %w", err)
	}
	s.logger.Debug("staff notification sent", zap.String("topic", s.topic), zap.String("messageID", id))
	return nil
}

type noopNotificationService struct {
	logger *zap.Logger
}

func (n noopNotificationService) NotifyStaff(_ context.Context, title, _ string, _ map[string]string) error {
	n.logger.Debug("staff notifications disabled", zap.String("title", title))
	return nil
}

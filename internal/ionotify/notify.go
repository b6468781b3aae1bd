// Package ionotify delivers report notifications. Notifications can be
// saved to the notifications table, published to a Redis stream, or both.
package ionotify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sigapair/airlab/pkg/lifecycle"
)

// Saver persists notifications.
type Saver interface {
	SaveNotification(ctx context.Context, n lifecycle.Notification) error
}

type storeNotifier struct {
	saver Saver
}

// NewStoreNotifier creates a notifier that writes to the database where
// the portal reads notifications from.
func NewStoreNotifier(s Saver) lifecycle.Notifier {
	return &storeNotifier{saver: s}
}

// Notify saves the notification.
func (n *storeNotifier) Notify(ctx context.Context, msg lifecycle.Notification) error {
	return n.saver.SaveNotification(ctx, msg)
}

type multi []lifecycle.Notifier

// Multi sends notifications through every given notifier. All notifiers
// are tried, their errors are joined.
func Multi(ns ...lifecycle.Notifier) lifecycle.Notifier {
	return multi(ns)
}

// Notify implements lifecycle.Notifier.
func (m multi) Notify(ctx context.Context, msg lifecycle.Notification) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			slog.Warn("Notification delivery failed",
				"notification_id", msg.ID, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

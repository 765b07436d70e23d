package repository

import (
	"context"
	"errors"

	"emile-auto/internal/notifications/domain/model"
)

// ErrInvalidID marks an identifier the store cannot parse.
var ErrInvalidID = errors.New("invalid notification id")

// NotificationRepository is the persistence gateway for notifications.
type NotificationRepository interface {
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]model.Notification, error)

	// Create inserts a notification with the creation timestamp set at
	// insert time.
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)

	// MarkRead flags a notification as read and returns the updated record.
	MarkRead(ctx context.Context, id string) (*model.Notification, error)

	// Delete removes one notification by id. Absent ids are not an error.
	Delete(ctx context.Context, id string) error

	// ClearAll deletes every notification in one bulk primitive,
	// regardless of count. Irreversible; no filtering predicate honored.
	ClearAll(ctx context.Context) error
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emile-auto/internal/notifications/domain/model"
	"emile-auto/internal/notifications/domain/repository"
	"emile-auto/internal/shared/database"
	sharederrors "emile-auto/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationsCollection = "notifications"

// MongoNotificationRepository implements NotificationRepository using MongoDB
type MongoNotificationRepository struct {
	col database.CollectionInterface
}

// NewMongoNotificationRepository creates a notification repository on the
// given database.
func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{
		col: database.NewMongoCollectionAdapter(db.Collection(notificationsCollection)),
	}
}

// NewNotificationRepositoryWithCollection creates a repository on an
// explicit collection port. Used by tests.
func NewNotificationRepositoryWithCollection(col database.CollectionInterface) *MongoNotificationRepository {
	return &MongoNotificationRepository{col: col}
}

// List returns all notifications, newest first.
func (r *MongoNotificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, sharederrors.NewInfrastructureError("failed to list notifications").WithCause(err)
	}
	defer cur.Close(ctx)

	notifications := make([]model.Notification, 0)
	for cur.Next(ctx) {
		var n model.Notification
		if err := cur.Decode(&n); err != nil {
			return nil, sharederrors.NewInfrastructureError("failed to decode notification").WithCause(err)
		}
		notifications = append(notifications, n)
	}
	if err := cur.Err(); err != nil {
		return nil, sharederrors.NewInfrastructureError("failed to list notifications").WithCause(err)
	}

	return notifications, nil
}

// Create inserts a new notification.
func (r *MongoNotificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if n.Message == "" {
		return nil, sharederrors.NewValidationError("message is required")
	}

	n.ID = primitive.NewObjectID()
	n.Read = false
	n.CreatedAt = time.Now().UTC()

	insertedID, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return nil, sharederrors.NewInfrastructureError("failed to insert notification").WithCause(err)
	}
	if oid, ok := insertedID.(primitive.ObjectID); ok {
		n.ID = oid
	}

	return n, nil
}

// MarkRead sets the read flag in a single update and returns the result.
func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{"read": true}}
	updateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n model.Notification
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, updateOpts).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, sharederrors.NewNotFoundError("notification")
		}
		return nil, sharederrors.NewInfrastructureError("failed to mark notification read").WithCause(err)
	}

	return &n, nil
}

// Delete removes one notification. A missing record is not an error.
func (r *MongoNotificationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return sharederrors.NewInfrastructureError("failed to delete notification").WithCause(err)
	}
	return nil
}

// ClearAll wipes the collection with a single DeleteMany. Clearing an empty
// collection succeeds.
func (r *MongoNotificationRepository) ClearAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return sharederrors.NewInfrastructureError("failed to clear notifications").WithCause(err)
	}
	return nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"emile-auto/internal/cars/domain/model"
	"emile-auto/internal/cars/domain/repository"
	"emile-auto/internal/shared/database"
	sharederrors "emile-auto/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const carsCollection = "cars"

// MongoCarRepository implements the CarRepository interface using MongoDB
type MongoCarRepository struct {
	col database.CollectionInterface
}

// NewMongoCarRepository creates a car repository on the given database.
func NewMongoCarRepository(db *mongo.Database) *MongoCarRepository {
	return &MongoCarRepository{
		col: database.NewMongoCollectionAdapter(db.Collection(carsCollection)),
	}
}

// NewCarRepositoryWithCollection creates a repository on an explicit
// collection port. Used by tests.
func NewCarRepositoryWithCollection(col database.CollectionInterface) *MongoCarRepository {
	return &MongoCarRepository{col: col}
}

// List returns all cars ordered by creation time, newest first.
func (r *MongoCarRepository) List(ctx context.Context) ([]model.Car, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, sharederrors.NewInfrastructureError("failed to list cars").WithCause(err)
	}
	defer cur.Close(ctx)

	cars := make([]model.Car, 0)
	for cur.Next(ctx) {
		var car model.Car
		if err := cur.Decode(&car); err != nil {
			return nil, sharederrors.NewInfrastructureError("failed to decode car").WithCause(err)
		}
		cars = append(cars, car)
	}
	if err := cur.Err(); err != nil {
		return nil, sharederrors.NewInfrastructureError("failed to list cars").WithCause(err)
	}

	return cars, nil
}

// GetByID performs an exact lookup by object id.
func (r *MongoCarRepository) GetByID(ctx context.Context, id string) (*model.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	var car model.Car
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&car); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, sharederrors.NewNotFoundError("car")
		}
		return nil, sharederrors.NewInfrastructureError("failed to fetch car").WithCause(err)
	}

	return &car, nil
}

// Create inserts a new car. Views and the creation timestamp are always
// assigned here; client-supplied values for either are discarded.
func (r *MongoCarRepository) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	if err := car.Validate(); err != nil {
		return nil, err
	}

	car.ID = primitive.NewObjectID()
	car.Views = 0
	car.CreatedAt = time.Now().UTC()

	insertedID, err := r.col.InsertOne(ctx, car)
	if err != nil {
		return nil, sharederrors.NewInfrastructureError("failed to insert car").WithCause(err)
	}
	if oid, ok := insertedID.(primitive.ObjectID); ok {
		car.ID = oid
	}

	return car, nil
}

// Replace overwrites the full document by id and returns the stored result.
// No merge: fields the caller omits are gone after the replace.
func (r *MongoCarRepository) Replace(ctx context.Context, id string, car *model.Car) (*model.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	if err := car.Validate(); err != nil {
		return nil, err
	}

	car.ID = oid
	replaceOpts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var replaced model.Car
	if err := r.col.FindOneAndReplace(ctx, bson.M{"_id": oid}, car, replaceOpts).Decode(&replaced); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, sharederrors.NewNotFoundError("car")
		}
		return nil, sharederrors.NewInfrastructureError("failed to replace car").WithCause(err)
	}

	return &replaced, nil
}

// Delete removes a car by id. A missing record is not an error.
func (r *MongoCarRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return sharederrors.NewInfrastructureError("failed to delete car").WithCause(err)
	}
	return nil
}

// IncrementViews bumps the views counter by exactly 1 in a single atomic
// read-modify-write at the store. Concurrent increments all land.
func (r *MongoCarRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}

	update := bson.M{"$inc": bson.M{"views": 1}}
	updateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var car model.Car
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, updateOpts).Decode(&car); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, sharederrors.NewNotFoundError("car")
		}
		return 0, sharederrors.NewInfrastructureError("failed to increment views").WithCause(err)
	}

	return car.Views, nil
}

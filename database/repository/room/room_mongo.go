package roomRepo

import (
	"context"
	"fmt"
	"time"

	"roomi/database"
	"roomi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomTypeRepo implements RoomTypeRepository using MongoDB.
type MongoRoomTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomTypeRepo creates a new RoomTypeRepository backed by the given client.
func NewMongoRoomTypeRepo(client *mongo.Client) (RoomTypeRepository, error) {
	coll := client.Database(database.DatabaseName).Collection("room_types")
	repo := &MongoRoomTypeRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRoomTypeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create room type indexes: %w", err)
	}
	return nil
}

// Seed upserts each room type on its code.
func (r *MongoRoomTypeRepo) Seed(roomTypes []models.RoomType) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	for _, rt := range roomTypes {
		filter := bson.M{"code": rt.Code}
		update := bson.M{"$set": rt}
		opts := options.Update().SetUpsert(true)
		if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
			return fmt.Errorf("failed to seed room type %s: %w", rt.Code, err)
		}
	}
	return nil
}

// List returns the full catalog.
func (r *MongoRoomTypeRepo) List() ([]models.RoomType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rate", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	defer cursor.Close(ctx)

	var roomTypes []models.RoomType
	if err := cursor.All(ctx, &roomTypes); err != nil {
		return nil, fmt.Errorf("failed to decode room types: %w", err)
	}
	return roomTypes, nil
}

// GetByCode retrieves one room type by its short code.
func (r *MongoRoomTypeRepo) GetByCode(code string) (*models.RoomType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rt models.RoomType
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&rt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("room type %s not found", code)
		}
		return nil, fmt.Errorf("failed to fetch room type %s: %w", code, err)
	}
	return &rt, nil
}

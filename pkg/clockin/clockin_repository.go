package clockin

import (
	"context"
	"fmt"

	"Inventory-Tracker-API/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	ClockInRepository interface {
		Insert(ctx context.Context, clockIn *entities.ClockIn) (primitive.ObjectID, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*entities.ClockIn, error)
		FindMany(ctx context.Context, filter bson.M) ([]*entities.ClockIn, error)
		UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
		DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	}

	clockInRepository struct {
		collection *mongo.Collection
	}
)

func NewClockInRepository(db *mongo.Database) ClockInRepository {
	return &clockInRepository{
		collection: db.Collection("clockin"),
	}
}

func (r *clockInRepository) Insert(ctx context.Context, clockIn *entities.ClockIn) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, clockIn)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *clockInRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.ClockIn, error) {
	var clockIn entities.ClockIn
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&clockIn); err != nil {
		return nil, err
	}
	return &clockIn, nil
}

func (r *clockInRepository) FindMany(ctx context.Context, filter bson.M) ([]*entities.ClockIn, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clockIns []*entities.ClockIn
	if err := cursor.All(ctx, &clockIns); err != nil {
		return nil, err
	}
	return clockIns, nil
}

func (r *clockInRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *clockInRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

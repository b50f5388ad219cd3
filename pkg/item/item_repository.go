package item

import (
	"context"
	"fmt"

	"Inventory-Tracker-API/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	ItemRepository interface {
		Insert(ctx context.Context, item *entities.Item) (primitive.ObjectID, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Item, error)
		FindMany(ctx context.Context, filter bson.M) ([]*entities.Item, error)
		UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
		DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
		CountByEmail(ctx context.Context) ([]entities.ItemEmailCount, error)
	}

	itemRepository struct {
		collection *mongo.Collection
	}
)

func NewItemRepository(db *mongo.Database) ItemRepository {
	return &itemRepository{
		collection: db.Collection("items"),
	}
}

func (r *itemRepository) Insert(ctx context.Context, item *entities.Item) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Item, error) {
	var item entities.Item
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindMany(ctx context.Context, filter bson.M) ([]*entities.Item, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*entities.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *itemRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *itemRepository) CountByEmail(ctx context.Context) ([]entities.ItemEmailCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$email", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []entities.ItemEmailCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

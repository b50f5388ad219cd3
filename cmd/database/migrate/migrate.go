package migration

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migrate ensures the secondary indexes backing the filter endpoints.
func Migrate(ctx context.Context, db *mongo.Database) error {
	itemIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "insert_date", Value: 1}}},
	}
	if _, err := db.Collection("items").Indexes().CreateMany(ctx, itemIndexes); err != nil {
		log.Printf("Error creating items indexes: %v", err)
		return err
	}

	clockInIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "insert_datetime", Value: 1}}},
	}
	if _, err := db.Collection("clockin").Indexes().CreateMany(ctx, clockInIndexes); err != nil {
		log.Printf("Error creating clockin indexes: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

package config

import (
	"context"
	"log"
	"time"

	"Inventory-Tracker-API/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func ConnectDB() (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(utils.GetConfig("MONGO_URI")))
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Database ping failed: %v", err)
		return nil, err
	}

	return client.Database(utils.GetConfig("MONGO_DB")), nil
}

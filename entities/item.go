package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Item struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	ItemName   string             `bson:"item_name" json:"item_name"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	ExpiryDate time.Time          `bson:"expiry_date" json:"expiry_date"` // stored at midnight of the submitted date
	InsertDate time.Time          `bson:"insert_date" json:"insert_date"`
}

// ItemEmailCount is the shape produced by the count-by-email aggregation.
type ItemEmailCount struct {
	Email string `bson:"_id" json:"_id"`
	Count int    `bson:"count" json:"count"`
}

package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClockIn struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	Location       string             `bson:"location" json:"location"`
	InsertDatetime time.Time          `bson:"insert_datetime" json:"insert_datetime"`
}

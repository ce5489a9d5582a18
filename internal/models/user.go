package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents application user.
// The password hash is never serialized to clients.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"-"`
}

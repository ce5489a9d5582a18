package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Todo is a single todo item owned by exactly one user.
type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Completed bool               `bson:"completed" json:"completed"`
}

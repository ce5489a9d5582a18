package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Transaction is a single income or expense record.
// Amount is stored as an exact decimal string to avoid float rounding.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Amount      string             `bson:"amount" json:"amount"`
	Type        string             `bson:"type" json:"type"` // income / expense
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RevokedToken marks a token id (jti) as invalid before its natural expiry,
// e.g. after logout. Records are pruned once older than the retention window;
// by then the token itself has long expired.
type RevokedToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	JTI       string             `bson:"jti"`
	RevokedAt time.Time          `bson:"revoked_at"`
}

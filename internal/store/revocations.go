package store

import (
	"context"
	"fmt"
	"time"

	"github.com/DeniseL168/FinanceApp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Revocations persists revoked token ids in the "revoked_tokens"
// collection.
type Revocations struct {
	col *mongo.Collection
}

func NewRevocations(db *mongo.Database) *Revocations {
	return &Revocations{col: db.Collection("revoked_tokens")}
}

// Add records a revoked jti. Re-revoking the same jti hits the unique
// index and returns ErrDuplicate.
func (s *Revocations) Add(ctx context.Context, jti string, at time.Time) error {
	_, err := s.col.InsertOne(ctx, models.RevokedToken{JTI: jti, RevokedAt: at})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert revocation: %w", err)
	}
	return nil
}

func (s *Revocations) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"jti": jti})
	if err != nil {
		return false, fmt.Errorf("count revocations: %w", err)
	}
	return n > 0, nil
}

// DeleteOlderThan drops revocation records whose revocation timestamp
// predates the cutoff. Storage hygiene only: by the time a record is
// eligible, the token it refers to has expired on its own.
func (s *Revocations) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"revoked_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return fmt.Errorf("prune revocations: %w", err)
	}
	return nil
}

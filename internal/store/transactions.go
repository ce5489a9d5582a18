package store

import (
	"context"
	"fmt"

	"github.com/DeniseL168/FinanceApp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Transactions persists income/expense records in the "transactions"
// collection, with the same owner-filtered access rules as Todos.
type Transactions struct {
	col *mongo.Collection
}

func NewTransactions(db *mongo.Database) *Transactions {
	return &Transactions{col: db.Collection("transactions")}
}

// Create inserts the transaction and returns the stored document.
func (s *Transactions) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	res, err := s.col.InsertOne(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	var created models.Transaction
	err = s.col.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created)
	if err != nil {
		return nil, fmt.Errorf("read back transaction: %w", err)
	}
	return &created, nil
}

func (s *Transactions) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	txs := []models.Transaction{}
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return txs, nil
}

func (s *Transactions) Update(ctx context.Context, userID, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if res.ModifiedCount != 1 {
		return ErrNotFound
	}
	return nil
}

func (s *Transactions) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if res.DeletedCount != 1 {
		return ErrNotFound
	}
	return nil
}

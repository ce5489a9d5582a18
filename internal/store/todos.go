package store

import (
	"context"
	"fmt"

	"github.com/DeniseL168/FinanceApp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Todos persists todo items in the "todos" collection. All by-id
// operations filter on the owner as well, so one user can never reach
// another user's records.
type Todos struct {
	col *mongo.Collection
}

func NewTodos(db *mongo.Database) *Todos {
	return &Todos{col: db.Collection("todos")}
}

func (s *Todos) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	res, err := s.col.InsertOne(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	todo.ID = res.InsertedID.(primitive.ObjectID)
	return todo, nil
}

func (s *Todos) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos := []models.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return todos, nil
}

func (s *Todos) FindByID(ctx context.Context, userID, id string) (*models.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var todo models.Todo
	err = s.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&todo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &todo, nil
}

// Update applies a partial $set merge. A miss and a no-op update are
// both reported as ErrNotFound (ModifiedCount covers both cases).
func (s *Todos) Update(ctx context.Context, userID, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.ModifiedCount != 1 {
		return ErrNotFound
	}
	return nil
}

func (s *Todos) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount != 1 {
		return ErrNotFound
	}
	return nil
}

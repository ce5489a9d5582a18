// Package handler contains the HTTP resource handlers. Every handler
// follows the same contract: authenticate (done by the middleware),
// validate input, perform exactly one store operation, map the result
// to a status code, serialize.
package handler

import (
	"context"

	"github.com/DeniseL168/FinanceApp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserStore is the slice of the document store the auth handlers need.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// TodoStore is the slice of the document store the todo handlers need.
type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]models.Todo, error)
	FindByID(ctx context.Context, userID, id string) (*models.Todo, error)
	Update(ctx context.Context, userID, id string, fields bson.M) error
	Delete(ctx context.Context, userID, id string) error
}

// TransactionStore is the slice of the document store the transaction
// and AI handlers need.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	Update(ctx context.Context, userID, id string, fields bson.M) error
	Delete(ctx context.Context, userID, id string) error
}

// TokenIssuer is the slice of the token service the auth handlers need.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Revoke(ctx context.Context, tokenStr string) error
}

// Completer relays a prompt to the external completion service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

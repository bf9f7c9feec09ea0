package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/models"
)

var (
	// ErrNotFound covers unknown users and products.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when the unique email index rejects an insert.
	ErrDuplicate = errors.New("duplicate key")
)

// UserStore persists accounts and their embedded carts. Cart mutations are
// read-modify-write: load the user, mutate the cart slice, ReplaceCart.
// Concurrent writers for the same account race and the last write wins.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SetVerified(ctx context.Context, id primitive.ObjectID) error
	SetLastLogin(ctx context.Context, id primitive.ObjectID) error
	ReplaceCart(ctx context.Context, id primitive.ObjectID, cart []models.CartItem) error
}

// ProductStore is the read-only catalog.
type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	Featured(ctx context.Context, limit int64) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

package interfaces

import (
	"context"
	"errors"

	"github.com/bobmcallan/stockpulse/internal/models"
)

// PortfolioStorage persists portfolios keyed by owner user ID.
type PortfolioStorage interface {
	GetPortfolio(ctx context.Context, userID string) (*models.Portfolio, error)
	SavePortfolio(ctx context.Context, portfolio *models.Portfolio) error
	DeletePortfolio(ctx context.Context, userID string) error
}

// PostStorage persists forum posts.
type PostStorage interface {
	GetPost(ctx context.Context, id string) (*models.Post, error)
	SavePost(ctx context.Context, post *models.Post) error
	ListPosts(ctx context.Context, limit int) ([]*models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// UserStorage persists user accounts.
type UserStorage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
}

// StorageManager aggregates the storage areas and owns their lifecycle.
type StorageManager interface {
	PortfolioStorage() PortfolioStorage
	PostStorage() PostStorage
	UserStorage() UserStorage
	Close() error
}

// ErrNotFound is returned by storage implementations for missing records.
// Declared as an interface-level sentinel so services can branch without
// importing the storage backend.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " '" + e.Key + "' not found"
}

// IsNotFound reports whether err is a storage NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

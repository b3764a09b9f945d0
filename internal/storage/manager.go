// Package storage wires the storage areas behind the StorageManager contract.
package storage

import (
	"fmt"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/storage/badger"
)

// Manager aggregates the BadgerHold-backed stores over a single database.
type Manager struct {
	store      *badger.Store
	portfolios interfaces.PortfolioStorage
	posts      interfaces.PostStorage
	users      interfaces.UserStorage
	logger     *common.Logger
}

// NewManager opens the database at the configured path and builds the stores.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &Manager{
		store:      store,
		portfolios: badger.NewPortfolioStorage(store, logger),
		posts:      badger.NewPostStorage(store, logger),
		users:      badger.NewUserStorage(store, logger),
		logger:     logger,
	}, nil
}

// PortfolioStorage returns the portfolio store.
func (m *Manager) PortfolioStorage() interfaces.PortfolioStorage {
	return m.portfolios
}

// PostStorage returns the post store.
func (m *Manager) PostStorage() interfaces.PostStorage {
	return m.posts
}

// UserStorage returns the user store.
func (m *Manager) UserStorage() interfaces.UserStorage {
	return m.users
}

// Close closes the underlying database.
func (m *Manager) Close() error {
	return m.store.Close()
}

// Ensure Manager implements StorageManager
var _ interfaces.StorageManager = (*Manager)(nil)

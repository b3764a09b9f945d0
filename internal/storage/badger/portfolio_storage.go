package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

type portfolioStorage struct {
	store  *Store
	logger *common.Logger
}

// NewPortfolioStorage creates a new PortfolioStorage backed by BadgerHold.
func NewPortfolioStorage(store *Store, logger *common.Logger) interfaces.PortfolioStorage {
	return &portfolioStorage{store: store, logger: logger}
}

func (s *portfolioStorage) GetPortfolio(_ context.Context, userID string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := s.store.db.Get(userID, &portfolio)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &interfaces.NotFoundError{Kind: "portfolio", Key: userID}
		}
		return nil, fmt.Errorf("failed to get portfolio for '%s': %w", userID, err)
	}
	return &portfolio, nil
}

func (s *portfolioStorage) SavePortfolio(_ context.Context, portfolio *models.Portfolio) error {
	portfolio.UpdatedAt = time.Now()
	if portfolio.CreatedAt.IsZero() {
		portfolio.CreatedAt = time.Now()
	}

	if err := s.store.db.Upsert(portfolio.ID, portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio: %w", err)
	}
	s.logger.Debug().Str("id", portfolio.ID).Msg("Portfolio saved")
	return nil
}

func (s *portfolioStorage) DeletePortfolio(_ context.Context, userID string) error {
	err := s.store.db.Delete(userID, models.Portfolio{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete portfolio for '%s': %w", userID, err)
	}
	s.logger.Debug().Str("id", userID).Msg("Portfolio deleted")
	return nil
}

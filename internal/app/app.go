// Package app initializes and wires all StockPulse services.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/stockpulse/internal/clients/alphavantage"
	"github.com/bobmcallan/stockpulse/internal/common"
	"github.com/bobmcallan/stockpulse/internal/interfaces"
	"github.com/bobmcallan/stockpulse/internal/services/advisor"
	"github.com/bobmcallan/stockpulse/internal/services/analytics"
	"github.com/bobmcallan/stockpulse/internal/services/forum"
	"github.com/bobmcallan/stockpulse/internal/services/portfolio"
	"github.com/bobmcallan/stockpulse/internal/services/quote"
	"github.com/bobmcallan/stockpulse/internal/services/sentiment"
	"github.com/bobmcallan/stockpulse/internal/storage"
)

// App holds all initialized services, clients, and storage. It is the shared
// core used by cmd/stockpulse-server and by handler tests.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager

	AnalyticsService interfaces.AnalyticsService
	AdvisorService   interfaces.AdvisorService
	SentimentService interfaces.SentimentService
	QuoteService     interfaces.QuoteService
	PortfolioService interfaces.PortfolioService
	PostService      interfaces.PostService

	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	// Check provided path, STOCKPULSE_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("STOCKPULSE_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "stockpulse.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/stockpulse.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLogger(config.Logging.Level)

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// The quote client is optional: without an API key the quote service
	// falls back to simulated prices.
	var quoteClient interfaces.QuoteClient
	if config.Clients.AlphaVantage.APIKey != "" {
		quoteClient = alphavantage.NewClient(config.Clients.AlphaVantage.APIKey,
			alphavantage.WithBaseURL(config.Clients.AlphaVantage.BaseURL),
			alphavantage.WithLogger(logger),
			alphavantage.WithRateInterval(config.Clients.AlphaVantage.GetRateInterval()),
			alphavantage.WithTimeout(config.Clients.AlphaVantage.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("Alpha Vantage API key not configured - quotes will be simulated")
	}

	analyticsService := analytics.NewService(logger)
	advisorService := advisor.NewService(logger)
	sentimentService := sentiment.NewService(logger)
	quoteService := quote.NewService(quoteClient, logger)
	portfolioService := portfolio.NewService(storageManager, quoteService, analyticsService, logger)
	postService := forum.NewService(storageManager, sentimentService, logger)

	logger.Info().
		Str("version", common.GetVersion()).
		Str("environment", config.Environment).
		Bool("live_quotes", quoteClient != nil).
		Msg("StockPulse initialized")

	return &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		AnalyticsService: analyticsService,
		AdvisorService:   advisorService,
		SentimentService: sentimentService,
		QuoteService:     quoteService,
		PortfolioService: portfolioService,
		PostService:      postService,
		StartupTime:      time.Now(),
	}, nil
}

// Close releases all resources held by the app.
func (a *App) Close() {
	if err := a.Storage.Close(); err != nil {
		a.Logger.Error().Err(err).Msg("Failed to close storage")
	}
}

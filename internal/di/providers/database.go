package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/memorialapp/memorial-server/internal/config"
	"github.com/memorialapp/memorial-server/internal/firecrawl"
	"github.com/memorialapp/memorial-server/internal/logger"
	"github.com/memorialapp/memorial-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// FirecrawlHandle wraps the Firecrawl client with shutdown capability.
type FirecrawlHandle struct {
	*firecrawl.Client
}

// Shutdown implements do.Shutdownable.
func (h *FirecrawlHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideFirecrawlClient provides the Firecrawl search client.
func ProvideFirecrawlClient(i do.Injector) (*FirecrawlHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := firecrawl.NewClient(firecrawl.Config{
		APIKey:  cfg.Firecrawl.APIKey,
		BaseURL: cfg.Firecrawl.BaseURL,
		Timeout: cfg.Firecrawl.Timeout,
	}, log.Logger)

	if client.HasAPIKey() {
		log.Info("Firecrawl client configured", "base_url", cfg.Firecrawl.BaseURL)
	} else {
		log.Info("No Firecrawl API key - catalog refresh will seed the built-in works")
	}

	return &FirecrawlHandle{Client: client}, nil
}

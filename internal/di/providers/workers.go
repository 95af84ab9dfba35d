package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/memorialapp/memorial-server/internal/logger"
	"github.com/memorialapp/memorial-server/internal/service"
)

// SessionCleanupJob runs periodic session cleanup.
type SessionCleanupJob struct {
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (j *SessionCleanupJob) Shutdown() error {
	j.cancel()
	return nil
}

// ProvideSessionCleanupJob provides the periodic session cleanup job.
func ProvideSessionCleanupJob(i do.Injector) (*SessionCleanupJob, error) {
	sessionService := do.MustInvoke[*service.SessionService](i)
	log := do.MustInvoke[*logger.Logger](i)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		// Initial cleanup on startup
		if count, err := sessionService.DeleteExpiredSessions(ctx); err != nil {
			log.Warn("Initial session cleanup failed", "error", err)
		} else if count > 0 {
			log.Info("Initial session cleanup completed", "deleted", count)
		}

		for {
			select {
			case <-ticker.C:
				if count, err := sessionService.DeleteExpiredSessions(ctx); err != nil {
					log.Warn("Session cleanup failed", "error", err)
				} else if count > 0 {
					log.Info("Session cleanup completed", "deleted", count)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("Session cleanup job started")

	return &SessionCleanupJob{cancel: cancel}, nil
}

// CatalogBootstrap holds the result of the startup catalog seed.
type CatalogBootstrap struct {
	Seeded bool
}

// ProvideCatalogBootstrap seeds the built-in catalog on first start so the
// memorial never opens to an empty page.
func ProvideCatalogBootstrap(i do.Injector) (*CatalogBootstrap, error) {
	worksService := do.MustInvoke[*service.WorksService](i)
	log := do.MustInvoke[*logger.Logger](i)

	seeded, err := worksService.SeedIfEmpty(context.Background())
	if err != nil {
		return nil, err
	}

	if seeded {
		log.Info("Catalog seeded with built-in works")
	} else {
		log.Info("Catalog already populated")
	}

	return &CatalogBootstrap{Seeded: seeded}, nil
}

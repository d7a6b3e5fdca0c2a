package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MinerTapper_Go/internal/economy"
	"github.com/osse101/MinerTapper_Go/internal/repository"
	"github.com/osse101/MinerTapper_Go/internal/scheduler"
	"github.com/osse101/MinerTapper_Go/internal/server"
	"github.com/osse101/MinerTapper_Go/internal/sse"
	"github.com/osse101/MinerTapper_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server         *server.Server
	ReferralPoller *worker.ReferralPoller
	Scheduler      *scheduler.Scheduler
	TickPool       *worker.Pool
	PersistPool    *worker.Pool
	EconomyService economy.Service
	Hub            *sse.Hub
	Store          repository.StateStore
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. HTTP server (stop accepting new purchases and upgrades)
// 2. Referral poller and accrual schedule (no more ticks)
// 3. Persistence queue (flush writes already accepted)
// 4. Economy service (final synchronous save, which must land last)
// 5. Realtime hub and state store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ReferralPoller != nil {
		if err := components.ReferralPoller.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "worker", WorkerNameReferral, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.TickPool != nil {
		components.TickPool.Stop()
	}
	if components.PersistPool != nil {
		components.PersistPool.Stop()
	}

	if components.EconomyService != nil {
		shutdownService(ctx, ServiceNameEconomy, components.EconomyService)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

// shutdownableService is anything with a context-aware Shutdown
type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}

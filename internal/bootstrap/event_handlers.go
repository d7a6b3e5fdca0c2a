package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/event"
	"github.com/osse101/MinerTapper_Go/internal/metrics"
	"github.com/osse101/MinerTapper_Go/internal/presentation"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Catalog  *catalog.Catalog
	Realtime presentation.Broadcaster
	Panels   presentation.PanelSource // may be nil
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector and the presenter that feeds realtime clients.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	presenter := presentation.NewPresenter(deps.Catalog, deps.Realtime, deps.Panels)
	presenter.Subscribe(deps.EventBus)
	slog.Info(LogMsgPresenterSubscribed, "referral_panel", deps.Panels != nil)

	return nil
}

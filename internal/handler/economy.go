package handler

import (
	"context"
	"net/http"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/economy"
	"github.com/osse101/MinerTapper_Go/internal/logger"
	"github.com/osse101/MinerTapper_Go/internal/presentation"
)

// CatalogResponse lists every unit with its current prices and every achievement
type CatalogResponse struct {
	Version      string                         `json:"version"`
	Units        []economy.UnitPrice            `json:"units"`
	Achievements []domain.AchievementDefinition `json:"achievements"`
}

// currentView renders a snapshot; prices are computed from the same snapshot
func currentView(svc economy.Service) presentation.View {
	return viewOf(svc, svc.Snapshot())
}

func viewOf(svc economy.Service, st *domain.EconomyState) presentation.View {
	cat := svc.Catalog()
	return presentation.BuildView(cat, st, economy.Prices(cat, st))
}

// HandleGetState returns the rendered economy state
// @Summary Get economy state
// @Description Balance, mining power, units with prices, progress and achievements
// @Tags economy
// @Produce json
// @Success 200 {object} presentation.View
// @Router /api/v1/state [get]
func HandleGetState(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := currentView(svc)
		logger.FromContext(r.Context()).Debug(LogMsgStateRetrieved, "balance", view.Balance)
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGetCatalog returns the catalog with live prices
// @Summary Get catalog
// @Tags economy
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := svc.Catalog()
		respondJSON(w, http.StatusOK, CatalogResponse{
			Version:      cat.Version,
			Units:        svc.Prices(),
			Achievements: cat.Achievements,
		})
	}
}

// HandleGetAchievements returns every achievement card, locked or not
// @Summary Get achievements
// @Tags economy
// @Produce json
// @Success 200 {array} presentation.AchievementCard
// @Router /api/v1/achievements [get]
func HandleGetAchievements(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, currentView(svc).Achievements)
	}
}

type unitAction func(ctx context.Context, unitID int) (*domain.EconomyState, error)

// handleUnitAction runs a buy or upgrade and answers with the resulting view
func handleUnitAction(svc economy.Service, op string, action unitAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, ok := parseUnitAction(w, r)
		if !ok {
			return
		}

		st, err := action(r.Context(), req.UnitID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Info(LogMsgUnitActionRejected, "operation", op, "unit_id", req.UnitID, "error", err)
			respondError(w, status, msg)
			return
		}

		log.Info(LogMsgUnitActionSucceeded, "operation", op, "unit_id", req.UnitID, "mining_power", st.MiningPower)
		respondJSON(w, http.StatusOK, viewOf(svc, st))
	}
}

// HandleBuyUnit purchases one unit
// @Summary Buy a unit
// @Description Costs basePrice × (count + 1)
// @Tags economy
// @Produce json
// @Param unitID path int true "Unit id"
// @Success 200 {object} presentation.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/units/{unitID}/buy [post]
func HandleBuyUnit(svc economy.Service) http.HandlerFunc {
	return handleUnitAction(svc, economy.OperationBuy, svc.BuyUnit)
}

// HandleUpgradeUnit raises one unit's level
// @Summary Upgrade a unit
// @Description Costs basePrice × level × 2
// @Tags economy
// @Produce json
// @Param unitID path int true "Unit id"
// @Success 200 {object} presentation.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/units/{unitID}/upgrade [post]
func HandleUpgradeUnit(svc economy.Service) http.HandlerFunc {
	return handleUnitAction(svc, economy.OperationUpgrade, svc.UpgradeUnit)
}

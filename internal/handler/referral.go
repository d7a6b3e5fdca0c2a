package handler

import (
	"net/http"

	"github.com/osse101/MinerTapper_Go/internal/logger"
	"github.com/osse101/MinerTapper_Go/internal/referral"
)

// HandleGetReferral returns the referral panel
// @Summary Get referral panel
// @Description Invite link and the last known referral stats. Placeholders are shown when the stats service is unreachable or no Telegram user is known.
// @Tags referral
// @Produce json
// @Success 200 {object} referral.Panel
// @Router /api/v1/referral [get]
func HandleGetReferral(svc referral.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		panel := svc.Panel(r.Context())
		logger.FromContext(r.Context()).Debug(LogMsgReferralPanelRendered, "enabled", panel.Enabled, "available", panel.Available)
		respondJSON(w, http.StatusOK, panel)
	}
}

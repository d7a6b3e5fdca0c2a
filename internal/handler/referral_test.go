package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/referral"
)

type stubReferral struct {
	panel referral.Panel
}

func (s stubReferral) Panel(ctx context.Context) referral.Panel {
	return s.panel
}

func (s stubReferral) Refresh(ctx context.Context) (referral.RefreshResult, error) {
	return referral.RefreshResult{}, nil
}

func TestHandleGetReferral(t *testing.T) {
	panel := referral.Panel{
		Enabled:        false,
		DisabledReason: referral.ReasonNotInHost,
		Count:          referral.PlaceholderNoIdentity,
		Bonus:          referral.PlaceholderNoIdentity,
	}
	w := httptest.NewRecorder()

	HandleGetReferral(stubReferral{panel: panel}).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/referral", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got referral.Panel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, panel, got)
}

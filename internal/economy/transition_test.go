package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

func TestBuyUnit_ExactBalance(t *testing.T) {
	cat, st := newTestState()
	st.Balance = 10

	receipt, err := BuyUnit(cat, st, 1)

	require.NoError(t, err)
	assert.InDelta(t, 10, receipt.Price, 1e-9)
	assert.InDelta(t, 0, st.Balance, 1e-12)
	assert.Equal(t, 1, st.Units[1].Count)
	assert.Equal(t, 1, st.Units[1].Level)
	assert.InDelta(t, 0.0001+0.0001, st.MiningPower, 1e-12)
	assert.Equal(t, domain.UnitState{Count: 1, Level: 1}, receipt.After)
}

func TestBuyUnit_InsufficientFunds(t *testing.T) {
	cat, st := newTestState()
	st.Balance = 9.99
	before := st.Clone()

	_, err := BuyUnit(cat, st, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), domain.ErrMsgInsufficientFunds)
	assert.Equal(t, before, st, "rejected purchase must not mutate state")
}

func TestBuyUnit_UnknownUnit(t *testing.T) {
	cat, st := newTestState()
	st.Balance = 1e9
	before := st.Clone()

	_, err := BuyUnit(cat, st, 0)

	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
	assert.Equal(t, before, st)
}

func TestBuyUnit_RecomputesFromScratch(t *testing.T) {
	cat, st := newTestState()
	st.Balance = 1000
	// Drifted value is corrected by the purchase
	st.MiningPower = 123

	_, err := BuyUnit(cat, st, 2)

	require.NoError(t, err)
	assert.InDelta(t, 0.0001+0.0005, st.MiningPower, 1e-12)
}

func TestBuyUnit_NilUnitsMap(t *testing.T) {
	cat, st := newTestState()
	st.Units = nil
	st.Balance = 10

	_, err := BuyUnit(cat, st, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, st.Units[1].Count)
}

func TestUpgradeUnit(t *testing.T) {
	cat, st := newTestState()
	st.Units[1] = domain.UnitState{Count: 2, Level: 1}
	st.MiningPower = RecomputeMiningPower(cat, st)
	st.Balance = 25

	receipt, err := UpgradeUnit(cat, st, 1)

	require.NoError(t, err)
	assert.InDelta(t, 20, receipt.Price, 1e-9)
	assert.InDelta(t, 5, st.Balance, 1e-9)
	assert.Equal(t, 2, st.Units[1].Level)
	assert.InDelta(t, 0.0001+0.0001*2*2, st.MiningPower, 1e-12)
}

func TestUpgradeUnit_InsufficientFunds(t *testing.T) {
	cat, st := newTestState()
	st.Balance = 5

	_, err := UpgradeUnit(cat, st, 1)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 1, st.Unit(1).Level)
	assert.InDelta(t, 5, st.Balance, 1e-12)
}

func TestUpgradeUnit_UnownedIsPermitted(t *testing.T) {
	cat, st := newTestState()
	st.Balance = 20

	_, err := UpgradeUnit(cat, st, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.UnitState{Count: 0, Level: 2}, st.Units[1])
	// Latent only: no owned units means no extra power
	assert.InDelta(t, cat.InitialMiningPower, st.MiningPower, 1e-12)

	st.Balance = 10
	_, err = BuyUnit(cat, st, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0001+0.0001*1*2, st.MiningPower, 1e-12)
}

package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
)

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Mining Power At Least", humanize("mining_power_at_least"))
	assert.Equal(t, "Any Unit Owned", humanize("any_unit_owned"))
}

func TestRunSimulation_Passive(t *testing.T) {
	cat := catalog.Default()

	res, err := runSimulation(context.Background(), cat, simulateOptions{duration: 10 * time.Second})

	require.NoError(t, err)
	assert.Equal(t, 10, res.Ticks)
	assert.Zero(t, res.Purchases)
	assert.InDelta(t, cat.InitialMiningPower*10, res.State.Balance, 1e-9)
	assert.InDelta(t, res.State.Balance, res.State.TotalMined, 1e-9)
	assert.Empty(t, res.Unlocked)
}

func TestRunSimulation_GreedyBuysAndUnlocks(t *testing.T) {
	cat := catalog.Default()

	res, err := runSimulation(context.Background(), cat, simulateOptions{
		duration: time.Second,
		balance:  10,
		greedy:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Purchases)
	assert.Equal(t, 1, res.State.Units[1].Count)
	require.Len(t, res.Unlocked, 1)
	assert.Equal(t, catalog.AchievementFirstMiner, res.Unlocked[0].Achievement.ID)
	assert.Equal(t, time.Second, res.Unlocked[0].After)
}

func TestRunSimulation_RejectsNegativeStep(t *testing.T) {
	_, err := runSimulation(context.Background(), catalog.Default(), simulateOptions{duration: time.Second, step: -time.Second})
	assert.ErrorIs(t, err, errInvalidStep)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENV_SCHEMA_VERSION", "CATALOG_PATH", "STORE_DRIVER", "STORE_PATH", "PORT", "REFERRAL_BASE_URL"} {
		t.Setenv(key, "")
	}
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("STORE_PATH", t.TempDir())
}

func TestCatalogCommand(t *testing.T) {
	isolateEnv(t)

	out, err := runCLI(t, "catalog")

	require.NoError(t, err)
	assert.Contains(t, out, "Basic miner")
	assert.Contains(t, out, "Mining Power At Least")
}

func TestStateAndResetCommands(t *testing.T) {
	isolateEnv(t)

	out, err := runCLI(t, "state")
	require.NoError(t, err)
	assert.Contains(t, out, "Economy state (file store)")
	assert.Contains(t, out, "0.0000 USDT")

	_, err = runCLI(t, "reset")
	assert.ErrorIs(t, err, errResetNotConfirmed)

	out, err = runCLI(t, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved state removed")
}

func TestSimulateCommand(t *testing.T) {
	isolateEnv(t)

	out, err := runCLI(t, "simulate", "--duration", "5s", "--balance", "10", "--greedy")

	require.NoError(t, err)
	assert.Contains(t, out, "Simulated 5s in 5 ticks")
	assert.Contains(t, out, "First miner unlocked after 1s")
}

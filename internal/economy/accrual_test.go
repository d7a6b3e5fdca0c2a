package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccrue_OneSecond(t *testing.T) {
	_, st := newTestState()

	acc := Accrue(st, testNow.Add(time.Second))

	assert.InDelta(t, 1, acc.DeltaSeconds, 1e-12)
	assert.InDelta(t, 0.0001, acc.Mined, 1e-12)
	assert.InDelta(t, 0.0001, st.Balance, 1e-12)
	assert.InDelta(t, 0.0001, st.TotalMined, 1e-12)
	assert.Equal(t, testNow.Add(time.Second), st.LastUpdate)
	assert.False(t, acc.Clamped)
}

func TestAccrue_Linear(t *testing.T) {
	deltas := []time.Duration{0, 250 * time.Millisecond, time.Second, 90 * time.Second, 36 * time.Hour}

	for _, d := range deltas {
		_, st := newTestState()
		st.MiningPower = 0.0372
		st.Balance = 12.5
		st.TotalMined = 40

		Accrue(st, testNow.Add(d))

		mined := 0.0372 * d.Seconds()
		assert.InDelta(t, 12.5+mined, st.Balance, 1e-9, "delta %s", d)
		assert.InDelta(t, 40+mined, st.TotalMined, 1e-9, "delta %s", d)
	}
}

func TestAccrue_ClockRegressionClamped(t *testing.T) {
	_, st := newTestState()
	st.Balance = 3

	acc := Accrue(st, testNow.Add(-10*time.Second))

	assert.True(t, acc.Clamped)
	assert.Zero(t, acc.Mined)
	assert.InDelta(t, 3, st.Balance, 1e-12)
	assert.Zero(t, st.TotalMined)
	assert.Equal(t, testNow.Add(-10*time.Second), st.LastUpdate)
}

func TestTriggerAnimation(t *testing.T) {
	_, st := newTestState()
	cooldown := 3 * time.Second

	assert.False(t, TriggerAnimation(st, testNow.Add(3*time.Second), cooldown), "exactly at cooldown is not enough")
	assert.True(t, TriggerAnimation(st, testNow.Add(3001*time.Millisecond), cooldown))
	assert.Equal(t, testNow.Add(3001*time.Millisecond), st.LastCoinAnimation)
	assert.False(t, AnimationDue(st, testNow.Add(4*time.Second), cooldown))

	balance := st.Balance
	power := st.MiningPower
	TriggerAnimation(st, testNow.Add(time.Hour), cooldown)
	assert.Equal(t, balance, st.Balance)
	assert.Equal(t, power, st.MiningPower)
}

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNow(t *testing.T) {
	clk := NewRealClock()
	assert.False(t, clk.Now().IsZero())
}

func TestSimulatedClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := NewSimulatedClock(start)

	assert.True(t, clk.Now().Equal(start))

	clk.Advance(1500 * time.Millisecond)
	assert.True(t, clk.Now().Equal(start.Add(1500*time.Millisecond)))

	clk.Advance(-2 * time.Second)
	assert.True(t, clk.Now().Equal(start.Add(-500*time.Millisecond)))

	later := start.Add(time.Hour)
	clk.Set(later)
	assert.True(t, clk.Now().Equal(later))
}

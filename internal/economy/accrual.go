package economy

import (
	"time"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Accrual is the outcome of one accrual step
type Accrual struct {
	DeltaSeconds float64
	Mined        float64
	// Clamped is true when now was before LastUpdate
	Clamped bool
}

// Accrue credits miningPower × elapsed seconds since LastUpdate to the balance
// and the lifetime total, then moves LastUpdate to now. A clock that went
// backwards accrues nothing.
func Accrue(st *domain.EconomyState, now time.Time) Accrual {
	var acc Accrual

	delta := now.Sub(st.LastUpdate).Seconds()
	if delta < 0 {
		delta = 0
		acc.Clamped = true
	}

	acc.DeltaSeconds = delta
	acc.Mined = st.MiningPower * delta

	st.Balance += acc.Mined
	st.TotalMined += acc.Mined
	st.LastUpdate = now
	return acc
}

// AnimationDue reports whether more than cooldown has passed since the last
// coin animation.
func AnimationDue(st *domain.EconomyState, now time.Time, cooldown time.Duration) bool {
	return now.Sub(st.LastCoinAnimation) > cooldown
}

// TriggerAnimation resets the animation cooldown when it has elapsed.
// It only touches LastCoinAnimation.
func TriggerAnimation(st *domain.EconomyState, now time.Time, cooldown time.Duration) bool {
	if !AnimationDue(st, now, cooldown) {
		return false
	}
	st.LastCoinAnimation = now
	return true
}

// Package achievement evaluates one-way unlock conditions against the economy state.
package achievement

import (
	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Check reports whether the condition of def holds for st.
// Unknown kinds never unlock.
func Check(def domain.AchievementDefinition, st *domain.EconomyState) bool {
	if st == nil {
		return false
	}

	switch def.Kind {
	case domain.AchievementAnyUnitOwned:
		for _, u := range st.Units {
			if u.Count > 0 {
				return true
			}
		}
		return false
	case domain.AchievementMiningPowerAtLeast:
		return st.MiningPower >= def.Threshold
	case domain.AchievementTotalMinedAtLeast:
		return st.TotalMined >= def.Threshold
	case domain.AchievementBalanceAtLeast:
		return st.Balance >= def.Threshold
	default:
		return false
	}
}

// Evaluate checks every locked achievement in catalog order, flips the ones
// whose condition holds and returns them. Unlocked achievements are never
// re-checked or locked again.
func Evaluate(defs []domain.AchievementDefinition, st *domain.EconomyState) []domain.AchievementDefinition {
	if st == nil {
		return nil
	}
	if st.Achievements == nil {
		st.Achievements = make(map[string]bool, len(defs))
	}

	var unlocked []domain.AchievementDefinition
	for _, def := range defs {
		if st.Achievements[def.ID] {
			continue
		}
		if Check(def, st) {
			st.Achievements[def.ID] = true
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}

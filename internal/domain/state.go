package domain

import "time"

// EconomyState is the single mutable aggregate of a game session.
//
// MiningPower is derived from Units and must be recomputed after any change to
// a unit's count or level. TotalMined never decreases and Achievements only
// ever flip from false to true.
type EconomyState struct {
	Balance           float64           `json:"userBalance"`
	MiningPower       float64           `json:"miningPower"`
	Units             map[int]UnitState `json:"miners"`
	TotalMined        float64           `json:"totalMined"`
	LastUpdate        time.Time         `json:"lastUpdate"`
	Achievements      map[string]bool   `json:"achievements"`
	LastCoinAnimation time.Time         `json:"lastCoinAnimation"`
}

// NewEconomyState creates a fresh state with every unit at count 0, level 1 and
// every achievement locked.
func NewEconomyState(units []UnitDefinition, achievements []AchievementDefinition, initialPower float64, now time.Time) *EconomyState {
	st := &EconomyState{
		MiningPower:       initialPower,
		Units:             make(map[int]UnitState, len(units)),
		Achievements:      make(map[string]bool, len(achievements)),
		LastUpdate:        now,
		LastCoinAnimation: now,
	}
	for _, u := range units {
		st.Units[u.ID] = NewUnitState()
	}
	for _, a := range achievements {
		st.Achievements[a.ID] = false
	}
	return st
}

// Unit returns the state for a unit id, defaulting to count 0, level 1.
func (s *EconomyState) Unit(id int) UnitState {
	if u, ok := s.Units[id]; ok {
		return u
	}
	return NewUnitState()
}

// Clone returns a deep copy that shares no maps with the receiver.
func (s *EconomyState) Clone() *EconomyState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Units = make(map[int]UnitState, len(s.Units))
	for id, u := range s.Units {
		cp.Units[id] = u
	}
	cp.Achievements = make(map[string]bool, len(s.Achievements))
	for id, unlocked := range s.Achievements {
		cp.Achievements[id] = unlocked
	}
	return &cp
}

// UnlockedCount returns how many achievements are unlocked.
func (s *EconomyState) UnlockedCount() int {
	n := 0
	for _, unlocked := range s.Achievements {
		if unlocked {
			n++
		}
	}
	return n
}

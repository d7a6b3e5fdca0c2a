// Package persistence converts economy state to and from its stored form and
// writes it through a StateStore without blocking the game loop.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Encode serialises st as JSON using the stored field names
func Encode(st *domain.EconomyState) ([]byte, error) {
	if st == nil {
		return nil, fmt.Errorf(ErrMsgEncodeFailed, errors.New(ErrMsgNilState))
	}
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeFailed, err)
	}
	return data, nil
}

// Decode parses and validates stored state. Any failure wraps
// domain.ErrMalformedState.
func Decode(data []byte) (*domain.EconomyState, error) {
	var st domain.EconomyState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailed, domain.ErrMalformedState, err)
	}
	if err := validate(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func validate(st *domain.EconomyState) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"userBalance", st.Balance},
		{"miningPower", st.MiningPower},
		{"totalMined", st.TotalMined},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf(ErrMsgNonFiniteField, domain.ErrMalformedState, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf(ErrMsgNegativeField, domain.ErrMalformedState, f.name)
		}
	}

	for id, u := range st.Units {
		if !u.Valid() {
			return fmt.Errorf(ErrMsgInvalidUnitState, domain.ErrMalformedState, id, u.Count, u.Level)
		}
	}
	return nil
}

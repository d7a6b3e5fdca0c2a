package economy

import (
	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// UnitPrice is the current price sheet for one unit
type UnitPrice struct {
	UnitID        int     `json:"unit_id"`
	Name          string  `json:"name"`
	BasePower     float64 `json:"base_power"`
	Count         int     `json:"count"`
	Level         int     `json:"level"`
	PurchasePrice float64 `json:"purchase_price"`
	UpgradePrice  float64 `json:"upgrade_price"`
}

// PurchasePrice is basePrice × (count + 1)
func PurchasePrice(cat *catalog.Catalog, st *domain.EconomyState, unitID int) (float64, error) {
	def, err := cat.Unit(unitID)
	if err != nil {
		return 0, err
	}
	return purchasePrice(def, st.Unit(unitID)), nil
}

// UpgradePrice is basePrice × level × 2
func UpgradePrice(cat *catalog.Catalog, st *domain.EconomyState, unitID int) (float64, error) {
	def, err := cat.Unit(unitID)
	if err != nil {
		return 0, err
	}
	return upgradePrice(def, st.Unit(unitID)), nil
}

func purchasePrice(def domain.UnitDefinition, u domain.UnitState) float64 {
	return def.BasePrice * float64(u.Count+1)
}

func upgradePrice(def domain.UnitDefinition, u domain.UnitState) float64 {
	return def.BasePrice * float64(u.Level) * 2
}

// RecomputeMiningPower folds over every catalog unit:
// initialPower + Σ basePower × count × level.
// Units in the state that are not in the catalog contribute nothing.
func RecomputeMiningPower(cat *catalog.Catalog, st *domain.EconomyState) float64 {
	power := cat.InitialMiningPower
	for _, def := range cat.Units {
		u := st.Unit(def.ID)
		power += def.BasePower * float64(u.Count) * float64(u.Level)
	}
	return power
}

// Prices returns the price sheet for every unit in catalog order
func Prices(cat *catalog.Catalog, st *domain.EconomyState) []UnitPrice {
	prices := make([]UnitPrice, 0, len(cat.Units))
	for _, def := range cat.Units {
		u := st.Unit(def.ID)
		prices = append(prices, UnitPrice{
			UnitID:        def.ID,
			Name:          def.Name,
			BasePower:     def.BasePower,
			Count:         u.Count,
			Level:         u.Level,
			PurchasePrice: purchasePrice(def, u),
			UpgradePrice:  upgradePrice(def, u),
		})
	}
	return prices
}

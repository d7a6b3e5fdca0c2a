package economy

import (
	"fmt"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Receipt describes an applied purchase or upgrade
type Receipt struct {
	Unit  domain.UnitDefinition
	Price float64
	After domain.UnitState
}

// BuyUnit debits the purchase price, adds one unit and recomputes mining power.
// On any error st is left untouched.
func BuyUnit(cat *catalog.Catalog, st *domain.EconomyState, unitID int) (Receipt, error) {
	def, err := cat.Unit(unitID)
	if err != nil {
		return Receipt{}, err
	}

	u := st.Unit(unitID)
	price := purchasePrice(def, u)
	if st.Balance < price {
		return Receipt{}, fmt.Errorf(ErrMsgInsufficientFundsFmt, def.Name, price, st.Balance, domain.ErrInsufficientFunds)
	}

	u.Count++
	apply(cat, st, unitID, u, price)
	return Receipt{Unit: def, Price: price, After: u}, nil
}

// UpgradeUnit debits the upgrade price, raises the level by one and
// recomputes mining power. Owning the unit is not required.
// On any error st is left untouched.
func UpgradeUnit(cat *catalog.Catalog, st *domain.EconomyState, unitID int) (Receipt, error) {
	def, err := cat.Unit(unitID)
	if err != nil {
		return Receipt{}, err
	}

	u := st.Unit(unitID)
	price := upgradePrice(def, u)
	if st.Balance < price {
		return Receipt{}, fmt.Errorf(ErrMsgInsufficientFundsFmt, def.Name, price, st.Balance, domain.ErrInsufficientFunds)
	}

	u.Level++
	apply(cat, st, unitID, u, price)
	return Receipt{Unit: def, Price: price, After: u}, nil
}

func apply(cat *catalog.Catalog, st *domain.EconomyState, unitID int, u domain.UnitState, price float64) {
	if st.Units == nil {
		st.Units = make(map[int]domain.UnitState, len(cat.Units))
	}
	st.Balance -= price
	st.Units[unitID] = u
	st.MiningPower = RecomputeMiningPower(cat, st)
}

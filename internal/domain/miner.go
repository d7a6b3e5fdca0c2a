package domain

// UnitDefinition describes a purchasable miner. Definitions are immutable for
// the lifetime of a catalog.
type UnitDefinition struct {
	ID        int     `json:"id" yaml:"id" toml:"id" validate:"required,min=1"`
	Name      string  `json:"name" yaml:"name" toml:"name" validate:"required,max=64"`
	BasePower float64 `json:"base_power" yaml:"base_power" toml:"base_power" validate:"gte=0"`
	BasePrice float64 `json:"base_price" yaml:"base_price" toml:"base_price" validate:"gt=0"`
}

// UnitState is the owned count and upgrade level of one unit definition.
type UnitState struct {
	Count int `json:"count"`
	Level int `json:"level"`
}

// NewUnitState returns the state of a unit that has never been bought or upgraded.
func NewUnitState() UnitState {
	return UnitState{Count: 0, Level: 1}
}

// Valid reports whether the unit state satisfies count >= 0 and level >= 1.
func (u UnitState) Valid() bool {
	return u.Count >= 0 && u.Level >= 1
}

// AchievementKind selects the predicate an achievement is evaluated with.
type AchievementKind string

const (
	// AchievementAnyUnitOwned unlocks once any unit has a count above zero
	AchievementAnyUnitOwned AchievementKind = "any_unit_owned"
	// AchievementMiningPowerAtLeast unlocks once mining power reaches Threshold
	AchievementMiningPowerAtLeast AchievementKind = "mining_power_at_least"
	// AchievementTotalMinedAtLeast unlocks once lifetime mined total reaches Threshold
	AchievementTotalMinedAtLeast AchievementKind = "total_mined_at_least"
	// AchievementBalanceAtLeast unlocks once the spendable balance reaches Threshold
	AchievementBalanceAtLeast AchievementKind = "balance_at_least"
)

// AchievementDefinition is a one-way unlock described as data.
type AchievementDefinition struct {
	ID          string          `json:"id" yaml:"id" toml:"id" validate:"required,max=64"`
	Name        string          `json:"name" yaml:"name" toml:"name" validate:"required"`
	Description string          `json:"description" yaml:"description" toml:"description"`
	Icon        string          `json:"icon" yaml:"icon" toml:"icon"`
	Kind        AchievementKind `json:"kind" yaml:"kind" toml:"kind" validate:"required,oneof=any_unit_owned mining_power_at_least total_mined_at_least balance_at_least"`
	Threshold   float64         `json:"threshold" yaml:"threshold" toml:"threshold" validate:"gte=0"`
}

package catalog

import (
	"fmt"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// Catalog is the static game configuration: unit definitions, achievement
// definitions and the loop timings.
type Catalog struct {
	Version             string                         `yaml:"version" toml:"version"`
	InitialMiningPower  float64                        `yaml:"initial_mining_power" toml:"initial_mining_power" validate:"gte=0"`
	TotalPool           float64                        `yaml:"total_pool" toml:"total_pool" validate:"gte=0"`
	TickIntervalMs      int                            `yaml:"tick_interval_ms" toml:"tick_interval_ms" validate:"gt=0"`
	AnimationCooldownMs int                            `yaml:"animation_cooldown_ms" toml:"animation_cooldown_ms" validate:"gte=0"`
	ProgressMaxPower    float64                        `yaml:"progress_max_power" toml:"progress_max_power" validate:"gt=0"`
	Units               []domain.UnitDefinition        `yaml:"units" toml:"units" validate:"required,min=1,dive"`
	Achievements        []domain.AchievementDefinition `yaml:"achievements" toml:"achievements" validate:"dive"`
}

// Default returns the built-in catalog the game ships with.
func Default() *Catalog {
	return &Catalog{
		Version:             DefaultVersion,
		InitialMiningPower:  DefaultInitialMiningPower,
		TotalPool:           DefaultTotalPool,
		TickIntervalMs:      DefaultTickIntervalMs,
		AnimationCooldownMs: DefaultAnimationCooldownMs,
		ProgressMaxPower:    DefaultProgressMaxPower,
		Units: []domain.UnitDefinition{
			{ID: 1, Name: "Basic miner", BasePower: 0.0001, BasePrice: 10},
			{ID: 2, Name: "Advanced miner", BasePower: 0.0005, BasePrice: 50},
			{ID: 3, Name: "Super miner", BasePower: 0.002, BasePrice: 200},
			{ID: 4, Name: "Mega miner", BasePower: 0.01, BasePrice: 1000},
		},
		Achievements: []domain.AchievementDefinition{
			{
				ID:          AchievementFirstMiner,
				Name:        "First miner",
				Description: "Buy your first miner",
				Icon:        "🎮",
				Kind:        domain.AchievementAnyUnitOwned,
			},
			{
				ID:          AchievementSpeedDemon,
				Name:        "Speed demon",
				Description: "Reach a mining speed of 0.1 USDT/s",
				Icon:        "⚡",
				Kind:        domain.AchievementMiningPowerAtLeast,
				Threshold:   0.1,
			},
			{
				ID:          AchievementMillionaire,
				Name:        "Millionaire",
				Description: "Mine 1000 USDT",
				Icon:        "💰",
				Kind:        domain.AchievementTotalMinedAtLeast,
				Threshold:   1000,
			},
		},
	}
}

// Unit looks up a unit definition by id.
func (c *Catalog) Unit(id int) (domain.UnitDefinition, error) {
	for _, u := range c.Units {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.UnitDefinition{}, fmt.Errorf("%w: %d", domain.ErrUnknownUnit, id)
}

// Achievement looks up an achievement definition by id.
func (c *Catalog) Achievement(id string) (domain.AchievementDefinition, bool) {
	for _, a := range c.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return domain.AchievementDefinition{}, false
}

// TickInterval is the fixed wall-clock interval between accrual ticks.
func (c *Catalog) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// AnimationCooldown is the minimum gap between two cosmetic coin animations.
func (c *Catalog) AnimationCooldown() time.Duration {
	return time.Duration(c.AnimationCooldownMs) * time.Millisecond
}

// NewState creates a fresh economy state for this catalog.
func (c *Catalog) NewState(now time.Time) *domain.EconomyState {
	return domain.NewEconomyState(c.Units, c.Achievements, c.InitialMiningPower, now)
}

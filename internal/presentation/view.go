package presentation

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/economy"
)

// View is everything the game screen renders for one state
type View struct {
	Balance      string            `json:"balance"`
	MiningPower  string            `json:"mining_power"`
	TotalMined   string            `json:"total_mined"`
	Progress     float64           `json:"progress"`
	Units        []UnitView        `json:"units"`
	Achievements []AchievementCard `json:"achievements"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// UnitView is one miner card
type UnitView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Power         string `json:"power"`
	Count         int    `json:"count"`
	Level         int    `json:"level"`
	PurchasePrice string `json:"purchase_price"`
	UpgradePrice  string `json:"upgrade_price"`
	CanBuy        bool   `json:"can_buy"`
	CanUpgrade    bool   `json:"can_upgrade"`
}

// AchievementCard is one entry of the achievements list
type AchievementCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// Notice is the popup shown when an achievement unlocks
type Notice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// BuildView renders st against cat. prices must come from the same state.
func BuildView(cat *catalog.Catalog, st *domain.EconomyState, prices []economy.UnitPrice) View {
	v := View{
		Balance:      FormatAmount(st.Balance),
		MiningPower:  FormatRate(st.MiningPower),
		TotalMined:   FormatAmount(st.TotalMined),
		Progress:     Progress(st.MiningPower, cat.ProgressMaxPower),
		Units:        make([]UnitView, 0, len(prices)),
		Achievements: make([]AchievementCard, 0, len(cat.Achievements)),
		UpdatedAt:    st.LastUpdate,
	}

	for _, p := range prices {
		v.Units = append(v.Units, UnitView{
			ID:            p.UnitID,
			Name:          p.Name,
			Power:         FormatRate(p.BasePower),
			Count:         p.Count,
			Level:         p.Level,
			PurchasePrice: fmt.Sprintf(PriceFormat, p.PurchasePrice),
			UpgradePrice:  fmt.Sprintf(PriceFormat, p.UpgradePrice),
			CanBuy:        st.Balance >= p.PurchasePrice,
			CanUpgrade:    st.Balance >= p.UpgradePrice,
		})
	}

	for _, a := range cat.Achievements {
		v.Achievements = append(v.Achievements, AchievementCard{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Unlocked:    st.Achievements[a.ID],
		})
	}
	return v
}

// Progress is power / maxPower clamped to [0, 1]
func Progress(power, maxPower float64) float64 {
	if maxPower <= 0 || power <= 0 || math.IsNaN(power) {
		return 0
	}
	return math.Min(power/maxPower, 1)
}

func FormatAmount(v float64) string {
	return fmt.Sprintf(AmountFormat, v)
}

func FormatRate(v float64) string {
	return fmt.Sprintf(RateFormat, v)
}

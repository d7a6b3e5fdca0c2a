package domain

// TickPayload is the event payload for economy.tick events
type TickPayload struct {
	Mined        float64 `json:"mined"`
	DeltaSeconds float64 `json:"delta_seconds"`
	Balance      float64 `json:"balance"`
	MiningPower  float64 `json:"mining_power"`
	TotalMined   float64 `json:"total_mined"`
	Timestamp    int64   `json:"timestamp"`
}

// UnitPurchasedPayload is the event payload for unit.purchased events
type UnitPurchasedPayload struct {
	UnitID      int     `json:"unit_id"`
	UnitName    string  `json:"unit_name"`
	Price       float64 `json:"price"`
	Count       int     `json:"count"`
	MiningPower float64 `json:"mining_power"`
	Timestamp   int64   `json:"timestamp"`
}

// UnitUpgradedPayload is the event payload for unit.upgraded events
type UnitUpgradedPayload struct {
	UnitID      int     `json:"unit_id"`
	UnitName    string  `json:"unit_name"`
	Price       float64 `json:"price"`
	Level       int     `json:"level"`
	MiningPower float64 `json:"mining_power"`
	Timestamp   int64   `json:"timestamp"`
}

// AchievementUnlockedPayload carries what the notification layer needs to show an unlock
type AchievementUnlockedPayload struct {
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Timestamp     int64  `json:"timestamp"`
}

// CoinAnimationPayload is the event payload for coin.animation events
type CoinAnimationPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// ReferralStatsPayload is the event payload for referral.stats events.
// Available is false when the fetch failed and placeholders are shown.
type ReferralStatsPayload struct {
	UserID    int64   `json:"user_id"`
	Count     int     `json:"count"`
	Bonus     float64 `json:"bonus"`
	Available bool    `json:"available"`
	Timestamp int64   `json:"timestamp"`
}

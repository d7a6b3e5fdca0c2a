package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "unit.purchased")
const (
	// EventTypeTick is published after every accrual step
	EventTypeTick = "economy.tick"

	// EventTypeUnitPurchased is published when a unit is bought
	EventTypeUnitPurchased = "unit.purchased"

	// EventTypeUnitUpgraded is published when a unit gains a level
	EventTypeUnitUpgraded = "unit.upgraded"

	// EventTypeAchievementUnlocked is published once per achievement, on its first unlock
	EventTypeAchievementUnlocked = "achievement.unlocked"

	// EventTypeCoinAnimation is a cosmetic trigger with no effect on the economy
	EventTypeCoinAnimation = "coin.animation"

	// EventTypeReferralStats is published after every referral poll, successful or not
	EventTypeReferralStats = "referral.stats"
)

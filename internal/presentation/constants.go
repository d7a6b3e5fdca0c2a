package presentation

// Display formats
const (
	AmountFormat = "%.4f USDT"
	RateFormat   = "%.4f USDT/s"
	PriceFormat  = "%g USDT"
)

// Realtime message types sent to connected clients
const (
	MessageView        = "economy.view"
	MessageAchievement = "achievement.unlocked"
	MessageCoin        = "coin.animation"
	MessageReferral    = "referral.panel"
)

// Log messages
const (
	LogMsgPresenterRegistered = "Presenter subscribed to economy events"
	LogMsgMissingState        = "Event carries no state, skipping view"
	LogMsgUnexpectedPayload   = "Unexpected event payload type"
)

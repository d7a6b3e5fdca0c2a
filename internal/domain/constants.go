package domain

// Currency is the display suffix for every amount shown to the player
const Currency = "USDT"

// StateKey is the single fixed key the economy state is persisted under
const StateKey = "gameState"

package domain

// ReferralStats is the response body of the remote referral service
type ReferralStats struct {
	Count int     `json:"count"`
	Bonus float64 `json:"bonus"`
}

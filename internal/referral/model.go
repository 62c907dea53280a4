package referral

import "time"

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// DefaultReward is the reward copy shown to referrers.
const DefaultReward = "₹100 Discount"

type Referral struct {
	ID            string    `json:"id"`
	ReferrerID    string    `json:"referrerId"`
	ReferralCode  string    `json:"referralCode"`
	ReferredEmail string    `json:"referredEmail"`
	Status        string    `json:"status"`
	Reward        string    `json:"reward"`
	// DiscountCode is empty until the referral completes; claiming
	// regenerates it.
	DiscountCode string    `json:"discountCode,omitempty"`
	Claimed      bool      `json:"claimed"`
	CreatedAt    time.Time `json:"createdAt"`
}

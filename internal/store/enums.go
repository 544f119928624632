package store

// Referral Attribution ENUMs
const (
	AttributionStatusPending   = "pending"
	AttributionStatusActive    = "active"
	AttributionStatusCancelled = "cancelled"
)

// Affiliate Reward ENUMs
const (
	RewardTypeRegistrationCredit     = "registration_credit"
	RewardTypeSubscriptionCommission = "subscription_commission"
)

const (
	RewardStatusPending   = "pending"
	RewardStatusCleared   = "cleared"
	RewardStatusCancelled = "cancelled"
)

// Payout Audit ENUMs
const (
	PayoutActionCreated   = "created"
	PayoutActionApproved  = "approved"
	PayoutActionRejected  = "rejected"
	PayoutActionPaid      = "paid"
	PayoutActionCancelled = "cancelled"
)

// Credit Transaction ENUMs
const (
	CreditTransactionTypeReferralReward = "referral_reward"
	CreditTransactionTypeAdjustment     = "adjustment"
)

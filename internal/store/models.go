package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// UUIDArray is a custom type for PostgreSQL uuid[] arrays
type UUIDArray []uuid.UUID

// Value implements the driver.Valuer interface for UUIDArray
func (a UUIDArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	ids := make([]string, len(a))
	for i, id := range a {
		ids[i] = id.String()
	}
	// PostgreSQL array format: {id1,id2,id3}
	return "{" + strings.Join(ids, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for UUIDArray
func (a *UUIDArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for UUIDArray: %T", value)
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = UUIDArray{}
		return nil
	}

	parts := strings.Split(str, ",")
	ids := make(UUIDArray, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.Trim(part, `"`))
		if err != nil {
			return fmt.Errorf("invalid uuid in array: %w", err)
		}
		ids = append(ids, id)
	}
	*a = ids
	return nil
}

// AffiliateProgram is the configuration root for the referral system. A
// program is immutable once created; replacing it deactivates the old one.
type AffiliateProgram struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	Name                  string          `db:"name" json:"name"`
	BaseCommissionRate    decimal.Decimal `db:"base_commission_rate" json:"base_commission_rate"`
	MaxLevels             int             `db:"max_levels" json:"max_levels"`
	RegistrationCredit    int64           `db:"registration_credit" json:"registration_credit"`
	SubscriptionGraceDays int             `db:"subscription_grace_days" json:"subscription_grace_days"`
	RewardPendingDays     int             `db:"reward_pending_days" json:"reward_pending_days"`
	LifetimeCommissions   bool            `db:"lifetime_commissions" json:"lifetime_commissions"`
	IsActive              bool            `db:"is_active" json:"is_active"`

	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	DeactivatedAt *time.Time `db:"deactivated_at" json:"deactivated_at,omitempty"`
}

// ProgramLevel is a per-program, per-level override of commission rate and
// registration credit.
type ProgramLevel struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	ProgramID      uuid.UUID        `db:"program_id" json:"program_id"`
	Level          int              `db:"level" json:"level"`
	CommissionRate *decimal.Decimal `db:"commission_rate" json:"commission_rate,omitempty"`
	CreditReward   *int64           `db:"credit_reward" json:"credit_reward,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReferralCode is a user's shareable code for a program. A user has at most
// one active code per program.
type ReferralCode struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	ProgramID uuid.UUID `db:"program_id" json:"program_id"`
	Code      string    `db:"code" json:"code"`
	IsActive  bool      `db:"is_active" json:"is_active"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReferralAttribution records that referred_user_id was brought in by
// referrer_user_id at a given level. Level 1 is the direct referrer; higher
// levels link upward through parent_attribution_id. A row is created once and
// only ever transitions to cancelled.
type ReferralAttribution struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	ProgramID           uuid.UUID  `db:"program_id" json:"program_id"`
	ReferrerUserID      uuid.UUID  `db:"referrer_user_id" json:"referrer_user_id"`
	ReferredUserID      uuid.UUID  `db:"referred_user_id" json:"referred_user_id"`
	ReferralCodeID      uuid.UUID  `db:"referral_code_id" json:"referral_code_id"`
	Level               int        `db:"level" json:"level"`
	ParentAttributionID *uuid.UUID `db:"parent_attribution_id" json:"parent_attribution_id,omitempty"`
	Status              string     `db:"status" json:"status"`

	AttributedAt time.Time  `db:"attributed_at" json:"attributed_at"`
	ActivatedAt  *time.Time `db:"activated_at" json:"activated_at,omitempty"`
	CancelledAt  *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	GraceEndAt   *time.Time `db:"grace_end_at" json:"grace_end_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AffiliateReward is a credit or money amount owed to user_id (the referrer)
// for an attribution. Provenance is carried in typed columns; the unique index
// on (attribution_id, source_invoice_id) is the idempotency boundary for
// invoice events.
type AffiliateReward struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ProgramID     uuid.UUID `db:"program_id" json:"program_id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	AttributionID uuid.UUID `db:"attribution_id" json:"attribution_id"`
	Type          string    `db:"type" json:"type"`
	Level         int       `db:"level" json:"level"`
	Status        string    `db:"status" json:"status"`

	CreditAmount   *int64           `db:"credit_amount" json:"credit_amount,omitempty"`
	CurrencyAmount *decimal.Decimal `db:"currency_amount" json:"currency_amount,omitempty"`
	CurrencyCode   *string          `db:"currency_code" json:"currency_code,omitempty"`
	CommissionRate *decimal.Decimal `db:"commission_rate" json:"commission_rate,omitempty"`

	SourceInvoiceID      *string `db:"source_invoice_id" json:"source_invoice_id,omitempty"`
	SourceSubscriptionID *string `db:"source_subscription_id" json:"source_subscription_id,omitempty"`

	PendingUntil time.Time  `db:"pending_until" json:"pending_until"`
	ReadyAt      *time.Time `db:"ready_at" json:"ready_at,omitempty"`
	SettledAt    *time.Time `db:"settled_at" json:"settled_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PayoutAuditLogEntry is an append-only record of an administrative action
// against a set of rewards. Entries are never updated or deleted.
type PayoutAuditLogEntry struct {
	ID             uuid.UUID        `db:"id" json:"id"`
	Action         string           `db:"action" json:"action"`
	RewardIDs      UUIDArray        `db:"reward_ids" json:"reward_ids"`
	PreviousStatus *string          `db:"previous_status" json:"previous_status,omitempty"`
	CreditAmount   *int64           `db:"credit_amount" json:"credit_amount,omitempty"`
	CurrencyAmount *decimal.Decimal `db:"currency_amount" json:"currency_amount,omitempty"`
	CurrencyCode   *string          `db:"currency_code" json:"currency_code,omitempty"`
	PerformedBy    uuid.UUID        `db:"performed_by" json:"performed_by"`
	Notes          *string          `db:"notes" json:"notes,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreditTransaction is a row in the platform credit ledger. Rewards are
// applied to the ledger when they mature.
type CreditTransaction struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Amount      int64      `db:"amount" json:"amount"`
	Type        string     `db:"type" json:"type"`
	Description string     `db:"description" json:"description"`
	RewardID    *uuid.UUID `db:"reward_id" json:"reward_id,omitempty"`
	Metadata    JSONB      `db:"metadata" json:"metadata,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

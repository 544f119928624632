package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Program Fixtures ---

// ProgramOpts customizes program creation.
type ProgramOpts struct {
	Name                  string
	BaseCommissionRate    decimal.Decimal
	MaxLevels             int
	RegistrationCredit    int64
	SubscriptionGraceDays int
	RewardPendingDays     int
	LifetimeCommissions   bool
	Levels                []CreateProgramLevelParams
}

// DefaultProgramOpts returns sensible defaults for program creation.
func DefaultProgramOpts() ProgramOpts {
	return ProgramOpts{
		Name:                  "test-program-" + uuid.New().String()[:8],
		BaseCommissionRate:    decimal.NewFromFloat(0.20),
		MaxLevels:             3,
		RegistrationCredit:    500,
		SubscriptionGraceDays: 30,
		RewardPendingDays:     14,
		LifetimeCommissions:   true,
	}
}

// CreateProgram creates an active test program with optional customization.
func (f *Fixtures) CreateProgram(opts ...func(*ProgramOpts)) AffiliateProgram {
	f.t.Helper()
	o := DefaultProgramOpts()
	for _, fn := range opts {
		fn(&o)
	}

	program, err := f.testDB.Store.CreateProgram(f.ctx, CreateProgramParams{
		Name:                  o.Name,
		BaseCommissionRate:    o.BaseCommissionRate,
		MaxLevels:             o.MaxLevels,
		RegistrationCredit:    o.RegistrationCredit,
		SubscriptionGraceDays: o.SubscriptionGraceDays,
		RewardPendingDays:     o.RewardPendingDays,
		LifetimeCommissions:   o.LifetimeCommissions,
		Levels:                o.Levels,
	})
	require.NoError(f.t, err, "failed to create test program")
	return program
}

// --- Referral Code Fixtures ---

// CodeOpts customizes referral code creation.
type CodeOpts struct {
	UserID    *uuid.UUID
	ProgramID *uuid.UUID
	Code      string
}

// CreateReferralCode creates a test referral code. If no program is specified,
// a new program is created.
func (f *Fixtures) CreateReferralCode(opts ...func(*CodeOpts)) ReferralCode {
	f.t.Helper()
	o := CodeOpts{Code: "TEST" + uuid.New().String()[:6]}
	for _, fn := range opts {
		fn(&o)
	}

	userID := uuid.New()
	if o.UserID != nil {
		userID = *o.UserID
	}

	var programID uuid.UUID
	if o.ProgramID != nil {
		programID = *o.ProgramID
	} else {
		programID = f.CreateProgram().ID
	}

	code, err := f.testDB.Store.CreateReferralCode(f.ctx, CreateReferralCodeParams{
		UserID:    userID,
		ProgramID: programID,
		Code:      o.Code,
	})
	require.NoError(f.t, err, "failed to create test referral code")
	return code
}

// --- Attribution Fixtures ---

// AttributionOpts customizes attribution chain creation.
type AttributionOpts struct {
	ProgramID      *uuid.UUID
	ReferredUserID *uuid.UUID
	Entries        []ChainEntryParams
	AttributedAt   time.Time
	PendingUntil   time.Time
}

// CreateAttribution persists a single-level attribution for a fresh referred
// user and returns it. The referral code (and program, unless given) are
// created on the fly.
func (f *Fixtures) CreateAttribution(opts ...func(*AttributionOpts)) ReferralAttribution {
	f.t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	o := AttributionOpts{
		AttributedAt: now,
		PendingUntil: now.Add(14 * 24 * time.Hour),
	}
	for _, fn := range opts {
		fn(&o)
	}

	var programID uuid.UUID
	if o.ProgramID != nil {
		programID = *o.ProgramID
	} else {
		programID = f.CreateProgram().ID
	}

	referredUserID := uuid.New()
	if o.ReferredUserID != nil {
		referredUserID = *o.ReferredUserID
	}

	entries := o.Entries
	if entries == nil {
		code := f.CreateReferralCode(func(c *CodeOpts) { c.ProgramID = &programID })
		entries = []ChainEntryParams{
			{Level: 1, ReferrerUserID: code.UserID, ReferralCodeID: code.ID},
		}
	}

	attributions, _, err := f.testDB.Store.CreateAttributionChain(f.ctx, CreateAttributionChainParams{
		ProgramID:      programID,
		ReferredUserID: referredUserID,
		AttributedAt:   o.AttributedAt,
		PendingUntil:   o.PendingUntil,
		Entries:        entries,
	})
	require.NoError(f.t, err, "failed to create test attribution")
	require.NotEmpty(f.t, attributions)
	return attributions[0]
}

// CreateCommissionReward creates a pending commission reward against the given
// attribution.
func (f *Fixtures) CreateCommissionReward(attribution ReferralAttribution, invoiceID string, pendingUntil time.Time) AffiliateReward {
	f.t.Helper()
	rewards, err := f.testDB.Store.CreateCommissionRewards(f.ctx, []CreateCommissionRewardParams{
		{
			ProgramID:            attribution.ProgramID,
			UserID:               attribution.ReferrerUserID,
			AttributionID:        attribution.ID,
			Level:                attribution.Level,
			CurrencyAmount:       decimal.NewFromFloat(10.00),
			CurrencyCode:         "USD",
			CommissionRate:       decimal.NewFromFloat(0.20),
			SourceInvoiceID:      invoiceID,
			SourceSubscriptionID: "sub_test",
			PendingUntil:         pendingUntil,
		},
	})
	require.NoError(f.t, err, "failed to create test commission reward")
	require.Len(f.t, rewards, 1)
	return rewards[0]
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

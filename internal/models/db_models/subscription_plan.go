package db_models

import (
	"time"

	"github.com/google/uuid"
)

type PlanType string

const (
	PlanMonthly   PlanType = "monthly"
	PlanQuarterly PlanType = "quarterly"
	PlanBiannual  PlanType = "biannual"
)

// Valid reports whether t is one of the offered subscription tiers.
func (t PlanType) Valid() bool {
	switch t {
	case PlanMonthly, PlanQuarterly, PlanBiannual:
		return true
	}
	return false
}

// PriceUSD is the authoritative tier price table.
func (t PlanType) PriceUSD() int64 {
	switch t {
	case PlanMonthly:
		return 15
	case PlanQuarterly:
		return 35
	case PlanBiannual:
		return 55
	}
	return 0
}

func (t PlanType) Duration() time.Duration {
	switch t {
	case PlanMonthly:
		return 30 * 24 * time.Hour
	case PlanQuarterly:
		return 90 * 24 * time.Hour
	case PlanBiannual:
		return 180 * 24 * time.Hour
	}
	return 0
}

// SubscriptionPlan is a time-bounded grant of access to all premium courses.
// At most one row per user may be active and unexpired at once; activating a
// new plan deactivates the prior one.
type SubscriptionPlan struct {
	BaseModel
	UserID   uuid.UUID `gorm:"index"`
	PlanType PlanType  `gorm:"index"`

	StartsAt int64 `gorm:"not null"` // unix seconds
	EndsAt   int64 `gorm:"not null"` // StartsAt + tier duration
	IsActive bool  `gorm:"index"`

	Account Account `gorm:"foreignKey:UserID"`
}

// Covers reports whether the plan grants access at the given instant.
func (s *SubscriptionPlan) Covers(now time.Time) bool {
	ts := now.Unix()
	return s.IsActive && s.StartsAt <= ts && ts <= s.EndsAt
}

package db_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanTypePriceTable(t *testing.T) {
	assert.Equal(t, int64(15), PlanMonthly.PriceUSD())
	assert.Equal(t, int64(35), PlanQuarterly.PriceUSD())
	assert.Equal(t, int64(55), PlanBiannual.PriceUSD())
}

func TestPlanTypeDurations(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, PlanMonthly.Duration())
	assert.Equal(t, 90*24*time.Hour, PlanQuarterly.Duration())
	assert.Equal(t, 180*24*time.Hour, PlanBiannual.Duration())
}

func TestPlanTypeValid(t *testing.T) {
	assert.True(t, PlanMonthly.Valid())
	assert.True(t, PlanQuarterly.Valid())
	assert.True(t, PlanBiannual.Valid())
	assert.False(t, PlanType("weekly").Valid())
	assert.False(t, PlanType("").Valid())
}

func TestSubscriptionPlanCovers(t *testing.T) {
	now := time.Now()
	plan := SubscriptionPlan{
		StartsAt: now.Add(-time.Hour).Unix(),
		EndsAt:   now.Add(time.Hour).Unix(),
		IsActive: true,
	}

	assert.True(t, plan.Covers(now))
	assert.False(t, plan.Covers(now.Add(2*time.Hour)))
	assert.False(t, plan.Covers(now.Add(-2*time.Hour)))

	plan.IsActive = false
	assert.False(t, plan.Covers(now))
}

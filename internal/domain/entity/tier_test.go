package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForBillingStatus(t *testing.T) {
	tests := []struct {
		status string
		want   Tier
	}{
		{status: "active", want: TierPro},
		{status: "trialing", want: TierPro},
		{status: " Active ", want: TierPro},
		{status: "past_due", want: TierBasic},
		{status: "canceled", want: TierBasic},
		{status: "unpaid", want: TierBasic},
		{status: "incomplete", want: TierBasic},
		{status: "incomplete_expired", want: TierBasic},
		{status: "", want: TierBasic},
		{status: "garbage", want: TierBasic},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, TierForBillingStatus(tt.status))
		})
	}
}

func TestNormalizeTier(t *testing.T) {
	assert.Equal(t, TierPro, NormalizeTier("pro"))
	assert.Equal(t, TierPro, NormalizeTier(" PRO "))
	assert.Equal(t, TierBasic, NormalizeTier("basic"))
	assert.Equal(t, TierBasic, NormalizeTier(""))
	assert.Equal(t, TierBasic, NormalizeTier("premium"))
}

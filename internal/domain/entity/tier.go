package entity

import "strings"

// Tier is a listing's subscription level. It gates photos and multi-category
// associations: a basic listing keeps at most one (primary) service and zero
// photos; a pro listing may carry both.
//
// Tier transitions are driven only by billing reconciliation, never by direct
// user action.
type Tier string

const (
	// TierBasic is the free tier.
	TierBasic Tier = "basic"
	// TierPro is the paid tier.
	TierPro Tier = "pro"
)

// NormalizeTier maps arbitrary stored strings onto a valid tier, defaulting
// to basic for anything unrecognized.
func NormalizeTier(s string) Tier {
	if Tier(strings.ToLower(strings.TrimSpace(s))) == TierPro {
		return TierPro
	}

	return TierBasic
}

// TierForBillingStatus maps a billing provider's subscription status onto the
// two-tier model: active and trialing subscriptions entitle pro, everything
// else (past_due, canceled, unpaid, incomplete, ...) falls back to basic.
func TierForBillingStatus(status string) Tier {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "trialing":
		return TierPro
	default:
		return TierBasic
	}
}

// Package service defines domain-level service interfaces implemented by infra adapters.
package service

import (
	"homepros/internal/errors"

	"github.com/paulmach/orb"
)

// ErrUnknownZip is returned when a postal code is outside the serviceable set.
// An unknown code is a hard miss, never an estimate.
var ErrUnknownZip = errors.New("zip code outside the serviceable area")

// Geocoder resolves a 5-character postal code to the centroid of its known
// locality. The serviceable area is a small fixed set of localities injected
// as configuration data.
type Geocoder interface {
	// Resolve returns the centroid for a known zip, or ErrUnknownZip.
	Resolve(zip string) (orb.Point, error)
}

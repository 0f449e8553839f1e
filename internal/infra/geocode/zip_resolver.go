// Package geocode resolves postal codes to locality centroids from a
// config-injected table.
package geocode

import (
	"strings"

	"homepros/config"
	"homepros/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type zipResolver struct {
	centroids map[string]orb.Point
}

// NewZipResolver builds a Geocoder over the configured centroid table.
func NewZipResolver(cfg *config.Config) service.Geocoder {
	centroids := make(map[string]orb.Point)
	if cfg.Search != nil {
		for zip, centroid := range cfg.Search.ZipCentroids {
			// orb.Point is (lng, lat)
			centroids[strings.TrimSpace(zip)] = orb.Point{centroid.Lng, centroid.Lat}
		}
	}

	return &zipResolver{centroids: centroids}
}

// Resolve returns the centroid of the given postal code, or ErrUnknownZip
// when the code is outside the serviceable area.
func (r *zipResolver) Resolve(zip string) (orb.Point, error) {
	point, ok := r.centroids[strings.TrimSpace(zip)]
	if !ok {
		return orb.Point{}, errors.WithStack(service.ErrUnknownZip)
	}

	return point, nil
}

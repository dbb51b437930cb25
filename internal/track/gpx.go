// Package track loads geographic track samples from GPX files and projects
// them onto terrain grid coordinates.
package track

import (
	"errors"
	"fmt"
	"os"

	"github.com/tkrajina/gpxgo/gpx"
	"go.uber.org/zap"

	"github.com/Faultbox/trailwalk/internal/logger"
)

// ErrTrackLoad is returned when a GPX file is missing, unparseable or holds
// no track points.
var ErrTrackLoad = errors.New("track load failed")

// GeoSample is one track point. Elevation is 0 when the file has none.
type GeoSample struct {
	Longitude float64
	Elevation float64
	Latitude  float64
}

// LoadGPX reads a GPX file from disk.
func LoadGPX(path string) ([]GeoSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrackLoad, err)
	}
	samples, err := ParseGPX(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// ParseGPX returns every track point of every track and segment in
// document order. Both GPX 1.0 and 1.1 documents are accepted.
func ParseGPX(data []byte) ([]GeoSample, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrackLoad, err)
	}

	var samples []GeoSample
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				var ele float64
				if p.Elevation.NotNull() {
					ele = p.Elevation.Value()
				}
				samples = append(samples, GeoSample{
					Longitude: p.Longitude,
					Elevation: ele,
					Latitude:  p.Latitude,
				})
			}
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no track points", ErrTrackLoad)
	}

	logger.Debug("gpx parsed",
		zap.String("version", doc.Version),
		zap.Int("tracks", len(doc.Tracks)),
		zap.Int("points", len(samples)),
	)
	return samples, nil
}

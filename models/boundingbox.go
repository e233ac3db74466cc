package models

import (
	"fmt"
	"strconv"
	"strings"
)

// minCoordinateDecimals keeps "-33.940" from collapsing to "-33.94".
const minCoordinateDecimals = 3

// BoundingBox is a rectangular region given by its south-west and
// north-east corners, in decimal degrees.
type BoundingBox struct {
	South float64 `json:"south" yaml:"south"`
	West  float64 `json:"west" yaml:"west"`
	North float64 `json:"north" yaml:"north"`
	East  float64 `json:"east" yaml:"east"`
}

// String renders the box in Overpass QL order: south, west, north, east.
func (b BoundingBox) String() string {
	return strings.Join([]string{
		formatCoordinate(b.South),
		formatCoordinate(b.West),
		formatCoordinate(b.North),
		formatCoordinate(b.East),
	}, ", ")
}

// Validate checks coordinate ranges and corner ordering.
func (b BoundingBox) Validate() error {
	for _, lat := range []float64{b.South, b.North} {
		if lat < -90 || lat > 90 {
			return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
		}
	}
	for _, lon := range []float64{b.West, b.East} {
		if lon < -180 || lon > 180 {
			return fmt.Errorf("longitude %v out of range [-180, 180]", lon)
		}
	}
	if b.South > b.North {
		return fmt.Errorf("south %v is above north %v", b.South, b.North)
	}
	if b.West > b.East {
		return fmt.Errorf("west %v is east of east %v", b.West, b.East)
	}
	return nil
}

func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s + "." + strings.Repeat("0", minCoordinateDecimals)
	}
	if decimals := len(s) - dot - 1; decimals < minCoordinateDecimals {
		s += strings.Repeat("0", minCoordinateDecimals-decimals)
	}
	return s
}

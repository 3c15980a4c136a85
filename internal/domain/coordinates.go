package domain

import (
	"math"
	"strconv"
)

// Immutable geographic coordinates in signed decimal degrees.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Report whether both fields are finite numbers.
func (c Coordinates) Valid() bool {
	return isFinite(c.Lat) && isFinite(c.Lon)
}

// Return latitude and longitude formatted for query strings.
func (c Coordinates) QueryValues() (lat string, lon string) {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64), strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

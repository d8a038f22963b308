package ardrone

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	rad2deg = 57.2957184819

	defaultWaypointVelocity = 500 // mm/s
	maxWaypointVelocity     = 10000
	maxWaypointOrientation  = 36000 // centidegrees
	maxWaypointAltitude     = 1000  // m
)

// KeyValue is one waypoint property.
type KeyValue struct {
	Key   string
	Value string
}

// WayPoint is a GPS target. Props may carry "velocity" (m/s) and
// "orientation" (rad); later entries override earlier ones.
type WayPoint struct {
	ID        uuid.UUID
	Latitude  float64
	Longitude float64
	Altitude  float64 // m
	Props     []KeyValue
}

func (w WayPoint) String() string {
	return fmt.Sprintf("%s (%.7f, %.7f, %.1fm)", w.ID, w.Latitude, w.Longitude, w.Altitude)
}

// FlyingCameraMode validates the waypoint and renders the value of the
// control:flying_camera_mode key.
func (w WayPoint) FlyingCameraMode() (string, error) {
	if !inRange(w.Latitude, -90, 90) || !inRange(w.Longitude, -180, 180) || !inRange(w.Altitude, 0, maxWaypointAltitude) {
		return "", errors.Wrap(ErrInvalidWaypoint, "latitude, longitude or altitude out of range")
	}
	lat := int64(math.Round(w.Latitude * 1e7))
	lon := int64(math.Round(w.Longitude * 1e7))
	alt := int(math.Round(w.Altitude * 1000))

	v := defaultWaypointVelocity
	orientation := 0
	for _, p := range w.Props {
		switch p.Key {
		case "velocity":
			n, err := scaledProp(p.Value, 1000, 0, maxWaypointVelocity)
			if err != nil {
				return "", errors.Wrap(err, "velocity")
			}
			v = n
		case "orientation":
			n, err := scaledProp(p.Value, rad2deg*100, -maxWaypointOrientation, maxWaypointOrientation)
			if err != nil {
				return "", errors.Wrap(err, "orientation")
			}
			orientation = n
		}
	}

	// "10000,0,lat,lon,alt,vx,vy,525000,orientation,0"
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d,%d,%d",
		10000, 0, lat, lon, alt, v, v, 525000, orientation, 0), nil
}

func inRange(v, min, max float64) bool {
	return v >= min && v <= max
}

// scaledProp parses a property, scales it to the vendor's integer unit and
// checks the result against [min, max].
func scaledProp(value string, scale float64, min, max int) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrInvalidWaypoint, "%q is not a finite number", value)
	}
	r := math.Round(f * scale)
	if r < float64(min) || r > float64(max) {
		return 0, errors.Wrapf(ErrInvalidWaypoint, "%.0f not in [%d, %d]", r, min, max)
	}
	return int(r), nil
}

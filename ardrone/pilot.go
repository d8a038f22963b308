package ardrone

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupported is returned by backends for calls the hardware cannot carry.
	ErrUnsupported = errors.New("not supported by this drone")

	// ErrInvalidWaypoint is returned when a GPS target is out of range.
	ErrInvalidWaypoint = errors.New("invalid waypoint")

	// ErrCalibrationDisabled is returned when IMU recalibration was not enabled.
	ErrCalibrationDisabled = errors.New("automatic IMU calibration is not active")
)

// Pilot is the flight control side of the vendor SDK.
type Pilot interface {
	// Progressive sends one analog motion command.
	Progressive(cmd ProgressiveCommand) error
	// Reset toggles the emergency state (the SDK "select" pad button).
	Reset() error
	// TakeOff presses the SDK "start" pad button.
	TakeOff() error
	// Land releases the SDK "start" pad button.
	Land() error
}

// Configurator queues vendor configuration events.
type Configurator interface {
	ConfigEvent(key, value string) error
	LedAnimation(anim LedAnimation, freq float32, duration uint32) error
	FlatTrim() error
}

// Telemetry returns the latest navigation data.
type Telemetry interface {
	Navdata() (Navdata, error)
}

//go:generate mockgen -destination=../mocks/mock_drone.go -package=mocks ardrone/ardrone Drone

// Drone is everything the driver needs from a backend.
type Drone interface {
	Pilot
	Configurator
	Telemetry
	io.Closer
}

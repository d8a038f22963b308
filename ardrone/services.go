package ardrone

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Recalibrator restarts the IMU bias estimation.
type Recalibrator interface {
	Recalibrate() error
}

// Services implements the one-shot drone operations: camera, recording,
// LEDs, flight animations, trim, autonomous flight and GPS waypoints.
// Calls are serialised so configuration events never interleave.
type Services struct {
	drone        Configurator
	recalibrator Recalibrator
	camModes     int
	clock        clock.Clock

	mu         sync.Mutex
	camChannel int
}

// ServicesOption configures Services.
type ServicesOption func(*Services)

// WithDroneVersion selects the camera channel count: AR.Drone 1 has four
// channels (front, bottom and both picture-in-picture), later drones two.
func WithDroneVersion(version int) ServicesOption {
	return func(s *Services) {
		if version == 1 {
			s.camModes = cameraModesARDrone1
		} else {
			s.camModes = cameraModesARDrone2
		}
	}
}

// WithRecalibrator wires the IMU recalibration service.
func WithRecalibrator(r Recalibrator) ServicesOption {
	return func(s *Services) {
		s.recalibrator = r
	}
}

// WithServicesClock replaces the clock used to date recordings.
func WithServicesClock(c clock.Clock) ServicesOption {
	return func(s *Services) {
		s.clock = c
	}
}

// NewServices returns Services sending configuration events to drone.
func NewServices(drone Configurator, opts ...ServicesOption) *Services {
	s := &Services{
		drone:    drone,
		camModes: cameraModesARDrone2,
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CamChannel returns the last selected camera channel.
func (s *Services) CamChannel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camChannel
}

// SetCamChannel selects the video channel, modulo the channel count.
func (s *Services) SetCamChannel(channel uint8) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCamChannel(int(channel) % s.camModes)
}

// ToggleCam switches to the next video channel.
func (s *Services) ToggleCam() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCamChannel((s.camChannel + 1) % s.camModes)
}

func (s *Services) setCamChannel(channel int) (int, error) {
	if err := s.drone.ConfigEvent(KeyVideoChannel, strconv.Itoa(channel)); err != nil {
		return s.camChannel, errors.Wrap(err, "set camera channel")
	}
	s.camChannel = channel
	glog.Infof("Setting camera channel to: %d", channel)
	return channel, nil
}

// SetRecord starts or stops on-board recording. Recording switches the
// stream to the MP4 360p + H264 720p codec, stopping switches it back.
func (s *Services) SetRecord(enable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	codec := CodecH264360P
	command := strconv.Itoa(userboxCmdStop)
	if enable {
		codec = CodecMP4360PH264720P
		command = fmt.Sprintf("%d,%s", userboxCmdStart, s.clock.Now().Format(recordDateLayout))
	}
	if err := s.drone.ConfigEvent(KeyVideoCodec, strconv.Itoa(codec)); err != nil {
		return errors.Wrap(err, "set video codec")
	}
	if err := s.drone.ConfigEvent(KeyUserboxCmd, command); err != nil {
		return errors.Wrap(err, "userbox command")
	}
	glog.Infof("Recording: %v", enable)
	return nil
}

// SetLedAnimation plays one of the fourteen LED patterns. Out of range
// types wrap around, the frequency sign is ignored.
func (s *Services) SetLedAnimation(animType uint8, freq float32, duration uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	anim := ledAnimations[int(animType)%len(ledAnimations)]
	f := float32(math.Abs(float64(freq)))
	if err := s.drone.LedAnimation(anim, f, uint32(duration)); err != nil {
		return errors.Wrap(err, "led animation")
	}
	return nil
}

// SetFlightAnimation plays a flight animation. A zero duration picks the
// animation's default.
func (s *Services) SetFlightAnimation(animType uint8, duration uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := int(animType) % flightAnimationsCount
	if duration == 0 {
		duration = flightAnimationTimeouts[t]
	}
	if err := s.drone.ConfigEvent(KeyFlightAnim, fmt.Sprintf("%d,%d", t, duration)); err != nil {
		return errors.Wrap(err, "flight animation")
	}
	return nil
}

// FlatTrim recalibrates the drone's horizontal plane. The drone must be on flat ground.
func (s *Services) FlatTrim() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.drone.FlatTrim(); err != nil {
		return errors.Wrap(err, "flat trim")
	}
	glog.Info("Flat Trim Set.")
	return nil
}

// SetAutonomousFlight turns the flying camera mode on or off.
func (s *Services) SetAutonomousFlight(enable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := "FALSE"
	if enable {
		value = "TRUE"
	}
	if err := s.drone.ConfigEvent(KeyFlyingCameraEnable, value); err != nil {
		return errors.Wrap(err, "autonomous flight")
	}
	glog.Infof("Set Autonomous Flight to %v", enable)
	return nil
}

// SetGPSTarget sends the drone to a GPS waypoint.
func (s *Services) SetGPSTarget(w WayPoint) error {
	// Left to the caller to log.
	param, err := w.FlyingCameraMode()
	if err != nil {
		return errors.Wrapf(err, "gps waypoint %v", w)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.drone.ConfigEvent(KeyFlyingCameraMode, param); err != nil {
		return errors.Wrap(err, "gps waypoint")
	}
	glog.Infof("Set GPS WayPoint %v: %q", w, param)
	return nil
}

// RecalibrateIMU restarts the IMU bias estimation, if enabled.
func (s *Services) RecalibrateIMU() error {
	if s.recalibrator == nil {
		return ErrCalibrationDisabled
	}
	return s.recalibrator.Recalibrate()
}

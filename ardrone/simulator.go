package ardrone

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	simTakeoffAltitude = 1000   // mm
	simMaxSpeed        = 2000.0 // mm/s at full stick
	simMaxVz           = 700.0  // mm/s at full stick
	simMaxTilt         = 12.0   // degrees at full stick
	simMaxYawRate      = 100.0  // degrees/s at full stick
	simBatteryDrain    = 0.1    // percent per second of flight
)

// Simulator is an in-process drone. It follows the flight state machine
// of the real hardware closely enough to drive the driver without one.
type Simulator struct {
	clock clock.Clock

	mu        sync.Mutex
	state     FlightState
	emergency bool
	battery   float64
	cmd       ProgressiveCommand
	altitude  float64
	heading   float64
	updated   time.Time
	config    map[string]string
	led       LedAnimation
	ledFreq   float32
	ledDur    uint32
	trims     int
	commands  int
}

// NewSimulator returns a landed simulator with a full battery.
func NewSimulator(c clock.Clock) *Simulator {
	if c == nil {
		c = clock.New()
	}
	return &Simulator{
		clock:   c,
		state:   StateLanded,
		battery: 100,
		updated: c.Now(),
		config:  make(map[string]string),
		led:     LedStandard,
	}
}

// advance integrates the last command up to now. Callers hold mu.
func (s *Simulator) advance() {
	now := s.clock.Now()
	dt := now.Sub(s.updated).Seconds()
	s.updated = now
	if dt <= 0 || !s.state.Flying() {
		return
	}
	s.battery -= dt * simBatteryDrain
	if s.battery < 0 {
		s.battery = 0
	}
	if s.cmd.Hover() {
		return
	}
	s.altitude += s.cmd.UpDown * simMaxVz * dt
	if s.altitude < 0 {
		s.altitude = 0
	}
	s.heading += s.cmd.Turn * simMaxYawRate * dt
	for s.heading > 180 {
		s.heading -= 360
	}
	for s.heading < -180 {
		s.heading += 360
	}
}

// Progressive implements Pilot. Commands sent while landed are ignored.
func (s *Simulator) Progressive(cmd ProgressiveCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advance()
	s.commands++
	if !s.state.Flying() {
		return nil
	}
	s.cmd = cmd
	if cmd.Hover() {
		s.state = StateHovering
	} else {
		s.state = StateFlying
	}
	return nil
}

// Reset implements Pilot by toggling the emergency state. Entering
// emergency cuts the motors.
func (s *Simulator) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advance()
	s.emergency = !s.emergency
	if s.emergency {
		s.state = StateUnknown
		s.altitude = 0
		s.cmd = ProgressiveCommand{}
	} else {
		s.state = StateLanded
	}
	glog.V(1).Infof("simulator: emergency %v", s.emergency)
	return nil
}

// TakeOff implements Pilot.
func (s *Simulator) TakeOff() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advance()
	switch {
	case s.emergency:
		return errors.New("simulator: takeoff refused in emergency")
	case s.battery <= 0:
		return errors.New("simulator: battery empty")
	case s.state.Flying():
		return nil
	}
	s.state = StateHovering
	s.altitude = simTakeoffAltitude
	s.cmd = ProgressiveCommand{}
	return nil
}

// Land implements Pilot.
func (s *Simulator) Land() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advance()
	if !s.state.Flying() {
		return nil
	}
	s.state = StateLanded
	s.altitude = 0
	s.cmd = ProgressiveCommand{}
	return nil
}

// ConfigEvent implements Configurator.
func (s *Simulator) ConfigEvent(key, value string) error {
	switch key {
	case KeyVideoChannel, KeyVideoCodec:
		if _, err := strconv.Atoi(value); err != nil {
			return errors.Wrapf(err, "simulator: %s", key)
		}
	case KeyFlyingCameraEnable:
		if value != "TRUE" && value != "FALSE" {
			return errors.Errorf("simulator: %s expects TRUE or FALSE, got %q", key, value)
		}
	case KeyUserboxCmd, KeyFlightAnim:
	case KeyFlyingCameraMode:
		if n := len(strings.Split(value, ",")); n != 10 {
			return errors.Errorf("simulator: %s expects 10 fields, got %d", key, n)
		}
	default:
		return errors.Wrapf(ErrUnsupported, "simulator: config key %q", key)
	}

	s.mu.Lock()
	s.config[key] = value
	s.mu.Unlock()
	return nil
}

// Config returns the last value set for key.
func (s *Simulator) Config(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.config[key]
	return v, ok
}

// Recording reports whether the last userbox command started a recording.
func (s *Simulator) Recording() bool {
	v, _ := s.Config(KeyUserboxCmd)
	return strings.HasPrefix(v, strconv.Itoa(userboxCmdStart)+",")
}

// LedAnimation implements Configurator.
func (s *Simulator) LedAnimation(anim LedAnimation, freq float32, duration uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.led, s.ledFreq, s.ledDur = anim, freq, duration
	return nil
}

// Led returns the last LED animation played.
func (s *Simulator) Led() (LedAnimation, float32, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.led, s.ledFreq, s.ledDur
}

// FlatTrim implements Configurator. Trimming is only possible on the ground.
func (s *Simulator) FlatTrim() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Flying() {
		return errors.New("simulator: flat trim while flying")
	}
	s.trims++
	return nil
}

// Commands returns the number of progressive commands received.
func (s *Simulator) Commands() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commands
}

// Navdata implements Telemetry.
func (s *Simulator) Navdata() (Navdata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advance()
	nd := Navdata{
		State:          s.state,
		Emergency:      s.emergency,
		BatteryPercent: s.battery,
		RotZ:           s.heading,
		Altitude:       int32(s.altitude),
		Timestamp:      s.updated,
	}
	if s.state.Flying() && !s.cmd.Hover() {
		nd.RotX = s.cmd.LeftRight * simMaxTilt
		nd.RotY = s.cmd.FrontBack * simMaxTilt
		nd.Vx = -s.cmd.FrontBack * simMaxSpeed
		nd.Vy = -s.cmd.LeftRight * simMaxSpeed
		nd.Vz = s.cmd.UpDown * simMaxVz
	}
	return nd, nil
}

// Close implements io.Closer.
func (s *Simulator) Close() error {
	return nil
}

package ardrone

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/glog"
)

// FlightState follows the navdata state numbering of the SDK.
type FlightState uint32

const (
	StateUnknown FlightState = iota
	StateInited
	StateLanded
	StateFlying
	StateHovering
	StateTest
	StateTakingOff
	StateGotoFix
	StateLanding
	StateLooping
)

// Flying reports whether the rotors are lifting the drone.
func (s FlightState) Flying() bool {
	switch s {
	case StateFlying, StateHovering, StateTakingOff, StateGotoFix, StateLooping:
		return true
	}
	return false
}

func (s FlightState) String() string {
	names := [...]string{"unknown", "inited", "landed", "flying", "hovering", "test", "taking off", "flying", "landing", "looping"}
	if int(s) < len(names) {
		return names[s]
	}
	return "invalid"
}

// Navdata is one telemetry sample.
type Navdata struct {
	State          FlightState
	Emergency      bool
	BatteryPercent float64
	RotX           float64 // Left/right tilt in degrees.
	RotY           float64 // Front/back tilt in degrees.
	RotZ           float64 // Heading in degrees.
	Altitude       int32   // Estimated altitude in mm.
	Vx             float64 // Linear velocities in mm/s.
	Vy             float64
	Vz             float64
	Timestamp      time.Time
}

func (n Navdata) String() string {
	s := fmt.Sprintf("%v battery:%.0f%% alt:%dmm rot:(%.1f, %.1f, %.1f) v:(%.0f, %.0f, %.0f)",
		n.State, n.BatteryPercent, n.Altitude, n.RotX, n.RotY, n.RotZ, n.Vx, n.Vy, n.Vz)
	if n.Emergency {
		s += " EMERGENCY"
	}
	return s
}

const (
	// DefaultNavdataPeriod is the telemetry poll interval (15Hz).
	DefaultNavdataPeriod = time.Second / 15

	// DefaultCalibrationSamples is the number of landed samples averaged into the tilt bias.
	DefaultCalibrationSamples = 30
)

// NavdataPoller samples a Telemetry source and hands the samples to a sink.
// With calibration enabled, the tilt bias measured while landed is removed
// from the published samples.
type NavdataPoller struct {
	source    Telemetry
	sink      func(Navdata)
	period    time.Duration
	clock     clock.Clock
	calibrate bool
	samples   int

	mu      sync.Mutex
	sumX    float64
	sumY    float64
	n       int
	biasX   float64
	biasY   float64
	hasBias bool
}

// PollerOption configures a NavdataPoller.
type PollerOption func(*NavdataPoller)

// WithPollPeriod sets the sampling interval.
func WithPollPeriod(d time.Duration) PollerOption {
	return func(p *NavdataPoller) {
		if d > 0 {
			p.period = d
		}
	}
}

// WithCalibration enables tilt bias estimation over the given number of samples.
func WithCalibration(samples int) PollerOption {
	return func(p *NavdataPoller) {
		p.calibrate = true
		if samples > 0 {
			p.samples = samples
		}
	}
}

// WithPollClock replaces the wall clock.
func WithPollClock(c clock.Clock) PollerOption {
	return func(p *NavdataPoller) {
		p.clock = c
	}
}

// NewNavdataPoller returns a poller reading source. sink may be nil.
func NewNavdataPoller(source Telemetry, sink func(Navdata), opts ...PollerOption) *NavdataPoller {
	p := &NavdataPoller{
		source:  source,
		sink:    sink,
		period:  DefaultNavdataPeriod,
		clock:   clock.New(),
		samples: DefaultCalibrationSamples,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Recalibrate drops the current bias and starts a new estimation.
func (p *NavdataPoller) Recalibrate() error {
	if !p.calibrate {
		return ErrCalibrationDisabled
	}
	p.mu.Lock()
	p.sumX, p.sumY, p.n = 0, 0, 0
	p.biasX, p.biasY, p.hasBias = 0, 0, false
	p.mu.Unlock()
	glog.Warning("navdata: recalibrating IMU, do not move the drone for a couple of seconds")
	return nil
}

// Calibrated reports whether a bias estimate is being applied.
func (p *NavdataPoller) Calibrated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasBias
}

// Poll reads one sample, corrects it and passes it to the sink.
func (p *NavdataPoller) Poll() (Navdata, error) {
	nd, err := p.source.Navdata()
	if err != nil {
		return Navdata{}, err
	}
	nd = p.correct(nd)
	if p.sink != nil {
		p.sink(nd)
	}
	return nd, nil
}

func (p *NavdataPoller) correct(nd Navdata) Navdata {
	if !p.calibrate {
		return nd
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasBias {
		// Only a drone sitting still on the ground gives a usable bias.
		if nd.State == StateLanded {
			p.sumX += nd.RotX
			p.sumY += nd.RotY
			p.n++
			if p.n >= p.samples {
				p.biasX = p.sumX / float64(p.n)
				p.biasY = p.sumY / float64(p.n)
				p.hasBias = true
				glog.V(1).Infof("navdata: tilt bias x:%.3f y:%.3f", p.biasX, p.biasY)
			}
		}
		return nd
	}
	nd.RotX -= p.biasX
	nd.RotY -= p.biasY
	return nd
}

// Run polls until ctx is done.
func (p *NavdataPoller) Run(ctx context.Context) error {
	ticker := p.clock.Ticker(p.period)
	defer ticker.Stop()

	errLog := newErrorLog("navdata", 5*time.Second)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := p.Poll(); err != nil {
				errLog.Report(err)
			}
		}
	}
}

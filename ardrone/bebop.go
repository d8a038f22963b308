package ardrone

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gobot.io/x/gobot/platforms/parrot/bebop/client"
)

// bebopClient is the part of the gobot Bebop client the driver uses.
type bebopClient interface {
	Connect() error
	TakeOff() error
	Land() error
	Stop() error
	FlatTrim() error
	StartRecording() error
	StopRecording() error
}

// Bebop drives a Parrot Bebop through gobot's client. The client keeps
// re-sending its Pcmd on its own loop, so a progressive command only
// replaces the Pcmd.
type Bebop struct {
	mu      sync.Mutex
	client  bebopClient
	setPcmd func(client.Pcmd)

	state     FlightState
	emergency bool
	cmd       ProgressiveCommand
	updated   time.Time
}

// NewBebop returns an unconnected Bebop. An empty ip keeps the client default.
func NewBebop(ip string) *Bebop {
	c := client.New()
	if ip != "" {
		c.IP = ip
	}
	return &Bebop{
		client:  c,
		setPcmd: func(p client.Pcmd) { c.Pcmd = p },
		state:   StateUnknown,
	}
}

// Connect opens the drone's command channels.
func (b *Bebop) Connect() error {
	if err := b.client.Connect(); err != nil {
		return errors.Wrap(err, "bebop connect")
	}
	b.mu.Lock()
	b.state = StateLanded
	b.updated = time.Now()
	b.mu.Unlock()
	glog.Info("bebop: connected")
	return nil
}

// pcmdAxis scales a [-1, 1] axis to the client's [-100, 100] range.
func pcmdAxis(v float64) int {
	return int(math.Round(clamp(v) * 100))
}

// Progressive implements Pilot. Hover commands release the sticks.
func (b *Bebop) Progressive(cmd ProgressiveCommand) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.emergency {
		return errors.New("bebop: emergency, reset first")
	}
	b.cmd = cmd
	b.updated = time.Now()
	if cmd.Hover() {
		if b.state.Flying() {
			b.state = StateHovering
		}
		return b.client.Stop()
	}
	if b.state.Flying() {
		b.state = StateFlying
	}
	// Pitch is positive forward on the Bebop, FrontBack is negative forward.
	b.setPcmd(client.Pcmd{
		Flag:  1,
		Roll:  pcmdAxis(cmd.LeftRight),
		Pitch: pcmdAxis(-cmd.FrontBack),
		Yaw:   pcmdAxis(cmd.Turn),
		Gaz:   pcmdAxis(cmd.UpDown),
	})
	return nil
}

// Reset implements Pilot. The Bebop has no emergency toggle over this
// client: entering emergency releases the sticks and lands, leaving it
// only clears the flag.
func (b *Bebop) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.emergency = !b.emergency
	if !b.emergency {
		return nil
	}
	b.cmd = ProgressiveCommand{}
	if err := b.client.Stop(); err != nil {
		return errors.Wrap(err, "bebop emergency stop")
	}
	if err := b.client.Land(); err != nil {
		return errors.Wrap(err, "bebop emergency land")
	}
	b.state = StateLanded
	return nil
}

// TakeOff implements Pilot.
func (b *Bebop) TakeOff() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.emergency {
		return errors.New("bebop: emergency, reset first")
	}
	if err := b.client.TakeOff(); err != nil {
		return errors.Wrap(err, "bebop takeoff")
	}
	b.state = StateTakingOff
	return nil
}

// Land implements Pilot.
func (b *Bebop) Land() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.client.Land(); err != nil {
		return errors.Wrap(err, "bebop land")
	}
	b.state = StateLanding
	return nil
}

// ConfigEvent implements Configurator. Only recording maps onto the
// Bebop; codec changes are accepted and ignored since it records in a
// fixed format.
func (b *Bebop) ConfigEvent(key, value string) error {
	switch key {
	case KeyVideoCodec:
		glog.V(1).Infof("bebop: ignoring %s=%s", key, value)
		return nil
	case KeyUserboxCmd:
		if strings.HasPrefix(value, strconv.Itoa(userboxCmdStart)) {
			return errors.Wrap(b.client.StartRecording(), "bebop start recording")
		}
		return errors.Wrap(b.client.StopRecording(), "bebop stop recording")
	}
	return errors.Wrapf(ErrUnsupported, "bebop: config key %q", key)
}

// LedAnimation implements Configurator. The Bebop has no LED patterns.
func (b *Bebop) LedAnimation(anim LedAnimation, freq float32, duration uint32) error {
	return errors.Wrap(ErrUnsupported, "bebop: led animation")
}

// FlatTrim implements Configurator.
func (b *Bebop) FlatTrim() error {
	return errors.Wrap(b.client.FlatTrim(), "bebop flat trim")
}

// Navdata implements Telemetry from the commands sent so far; the client
// does not decode the drone's own telemetry.
func (b *Bebop) Navdata() (Navdata, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Takeoff and landing settle within a few seconds.
	if time.Since(b.updated) > 3*time.Second {
		switch b.state {
		case StateTakingOff:
			b.state = StateHovering
		case StateLanding:
			b.state = StateLanded
		}
	}
	nd := Navdata{
		State:     b.state,
		Emergency: b.emergency,
		Timestamp: time.Now(),
	}
	if !b.cmd.Hover() {
		nd.Vx = -b.cmd.FrontBack * simMaxSpeed
		nd.Vy = -b.cmd.LeftRight * simMaxSpeed
		nd.Vz = b.cmd.UpDown * simMaxVz
	}
	return nd, nil
}

// Close releases the sticks.
func (b *Bebop) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return errors.Wrap(b.client.Stop(), "bebop close")
}

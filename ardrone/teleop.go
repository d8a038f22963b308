// Package ardrone drives a Parrot quadcopter from continuously updated
// velocity commands and exposes the drone's configuration operations.
package ardrone

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Teleop turns the latest operator command into SDK calls, once per tick.
// Redundant motion commands are suppressed, a hover command is re-sent
// every tick while all axes are near zero.
type Teleop struct {
	pilot  Pilot
	eps    float64
	period time.Duration
	clock  clock.Clock

	// tickMu serialises Update so SDK calls leave in decision order.
	tickMu sync.Mutex

	// mu guards everything below. Never held across an SDK call.
	mu           sync.Mutex
	cmd          CommandState
	prev         [4]float64
	needsReset   bool
	needsTakeoff bool
	needsLand    bool
}

// TeleopOption configures a Teleop.
type TeleopOption func(*Teleop)

// WithEpsilon sets the axis tolerance. Non-positive values are ignored.
func WithEpsilon(eps float64) TeleopOption {
	return func(t *Teleop) {
		if eps > 0 {
			t.eps = eps
		}
	}
}

// WithTickPeriod sets the interval used by Run.
func WithTickPeriod(d time.Duration) TeleopOption {
	return func(t *Teleop) {
		if d > 0 {
			t.period = d
		}
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) TeleopOption {
	return func(t *Teleop) {
		t.clock = c
	}
}

// NewTeleop returns a Teleop sending its commands to pilot.
func NewTeleop(pilot Pilot, opts ...TeleopOption) *Teleop {
	t := &Teleop{
		pilot:  pilot,
		eps:    DefaultEpsilon,
		period: DefaultTickPeriod,
		clock:  clock.New(),
		prev:   [4]float64{axisSentinel, axisSentinel, axisSentinel, axisSentinel},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Epsilon returns the axis tolerance in use.
func (t *Teleop) Epsilon() float64 {
	return t.eps
}

// SetVelocity replaces the commanded velocity. The last write wins.
func (t *Teleop) SetVelocity(c CommandState) {
	c = c.clamped()
	t.mu.Lock()
	t.cmd = c
	t.mu.Unlock()
}

// State returns the commanded velocity.
func (t *Teleop) State() CommandState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cmd
}

// RequestTakeoff asks the next tick to take off.
func (t *Teleop) RequestTakeoff() {
	t.mu.Lock()
	t.needsTakeoff = true
	t.mu.Unlock()
}

// RequestLand asks the next tick to land.
func (t *Teleop) RequestLand() {
	t.mu.Lock()
	t.needsLand = true
	t.mu.Unlock()
}

// RequestReset asks the next tick to toggle the emergency state.
func (t *Teleop) RequestReset() {
	t.mu.Lock()
	t.needsReset = true
	t.mu.Unlock()
}

// Pending reports the discrete requests still waiting for a tick.
func (t *Teleop) Pending() (reset, takeoff, land bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.needsReset, t.needsTakeoff, t.needsLand
}

// decide runs the state transition of one tick. Reset beats takeoff which
// beats land, and only one of them is serviced per tick.
func (t *Teleop) decide() (Action, ProgressiveCommand) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case t.needsReset:
		t.needsReset = false
		return ActionReset, ProgressiveCommand{}
	case t.needsTakeoff:
		t.needsTakeoff = false
		return ActionTakeoff, ProgressiveCommand{}
	case t.needsLand:
		t.needsLand = false
		return ActionLand, ProgressiveCommand{}
	}

	// A NaN axis or hint counts as changed and never as centered.
	cur := t.cmd.axes()
	same := true
	hover := true
	for i, v := range cur {
		if !(math.Abs(v-t.prev[i]) < t.eps) {
			same = false
		}
		if !(math.Abs(v) < t.eps) {
			hover = false
		}
	}
	// Non-zero hints keep the drone out of hover.
	if !(math.Abs(t.cmd.PitchHint) < t.eps && math.Abs(t.cmd.RollHint) < t.eps) {
		hover = false
	}
	t.prev = cur

	if same && !hover {
		return ActionNone, ProgressiveCommand{}
	}

	cmd := ProgressiveCommand{
		LeftRight: cur[0],
		FrontBack: cur[1],
		UpDown:    cur[2],
		Turn:      cur[3],
	}
	if hover {
		return ActionHover, cmd
	}
	cmd.Flag |= FlagProgressive
	return ActionMove, cmd
}

// Update runs one tick and sends the resulting command, if any, to the
// pilot. SDK errors are returned as is, wrapped with the action.
func (t *Teleop) Update() (Action, error) {
	t.tickMu.Lock()
	defer t.tickMu.Unlock()

	action, cmd := t.decide()

	var err error
	switch action {
	case ActionNone:
		return action, nil
	case ActionReset:
		err = t.pilot.Reset()
	case ActionTakeoff:
		err = t.pilot.TakeOff()
	case ActionLand:
		err = t.pilot.Land()
	case ActionMove, ActionHover:
		err = t.pilot.Progressive(cmd)
	}
	if glog.V(3) {
		glog.Infof("teleop: %v %v", action, cmd)
	}
	if err != nil {
		return action, errors.Wrapf(err, "teleop %v", action)
	}
	return action, nil
}

// Run ticks Update until ctx is done. SDK errors never stop the loop.
func (t *Teleop) Run(ctx context.Context) error {
	ticker := t.clock.Ticker(t.period)
	defer ticker.Stop()

	errLog := newErrorLog("teleop", time.Second)
	glog.V(1).Infof("teleop: running every %v, eps %g", t.period, t.eps)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			action, err := t.Update()
			if err != nil {
				errLog.Report(err)
				continue
			}
			if action != ActionNone && action != ActionHover && action != ActionMove {
				glog.Infof("teleop: %v sent", action)
			}
		}
	}
}

package ardrone

import (
	"fmt"
	"math"
	"time"
)

const (
	// FlagProgressive is bit 0 of the progressive command control flag.
	// 1 means the drone is actively moving, 0 asks it to hover.
	FlagProgressive = 1 << 0

	// FlagCombinedYaw is bit 1 of the control flag (combined yaw mode).
	// Reserved, never set by the teleop loop.
	FlagCombinedYaw = 1 << 1

	// DefaultEpsilon is the axis tolerance below which differences are noise.
	DefaultEpsilon = 1e-3

	// DefaultTickPeriod is the interval between two teleop updates.
	DefaultTickPeriod = 25 * time.Millisecond

	// axisSentinel is out of the [-1, 1] range so the first tick always counts as changed.
	axisSentinel = -10.0
)

// CommandState is the velocity currently commanded by the operator.
type CommandState struct {
	LeftRight float64 // Roll. Negative banks left. Clamped to [-1, 1].
	FrontBack float64 // Pitch. Negative moves forward. Clamped to [-1, 1].
	UpDown    float64 // Vertical speed. Positive climbs. Clamped to [-1, 1].
	Turn      float64 // Yaw rate. Positive turns clockwise. Clamped to [-1, 1].

	// PitchHint and RollHint only change the auto hover behaviour: any
	// non-zero value keeps the drone out of hover even when the four
	// axes above are zero. They pass through unclamped.
	PitchHint float64
	RollHint  float64
}

// axes returns the four main axes in snapshot order.
func (c CommandState) axes() [4]float64 {
	return [4]float64{c.LeftRight, c.FrontBack, c.UpDown, c.Turn}
}

// clamped returns a copy with the four main axes limited to [-1, 1].
func (c CommandState) clamped() CommandState {
	c.LeftRight = clamp(c.LeftRight)
	c.FrontBack = clamp(c.FrontBack)
	c.UpDown = clamp(c.UpDown)
	c.Turn = clamp(c.Turn)
	return c
}

// clamp limits v to [-1, 1]. NaN saturates to 1.
func clamp(v float64) float64 {
	if v > 1 || math.IsNaN(v) {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// ProgressiveCommand is the single analog motion call of the flight control SDK.
type ProgressiveCommand struct {
	Flag      int32
	LeftRight float64
	FrontBack float64
	UpDown    float64
	Turn      float64

	// Psi and PsiAccuracy are the magnetometer heading arguments. Always 0.
	Psi         float64
	PsiAccuracy float64
}

// Hover reports whether the command asks the drone to hold its position.
func (c ProgressiveCommand) Hover() bool {
	return c.Flag&FlagProgressive == 0
}

func (c ProgressiveCommand) String() string {
	return fmt.Sprintf("flag:%d lr:%.3f fb:%.3f ud:%.3f turn:%.3f", c.Flag, c.LeftRight, c.FrontBack, c.UpDown, c.Turn)
}

// Action is what a teleop tick decided to send to the drone.
type Action int

const (
	ActionNone Action = iota // Nothing changed, nothing sent.
	ActionReset
	ActionTakeoff
	ActionLand
	ActionMove
	ActionHover
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReset:
		return "reset"
	case ActionTakeoff:
		return "takeoff"
	case ActionLand:
		return "land"
	case ActionMove:
		return "move"
	case ActionHover:
		return "hover"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

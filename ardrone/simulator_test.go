package ardrone

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorFlight(t *testing.T) {
	mockClock := clock.NewMock()
	sim := NewSimulator(mockClock)

	// Sticks do nothing on the ground.
	require.NoError(t, sim.Progressive(ProgressiveCommand{Flag: FlagProgressive, UpDown: 1}))
	nd, _ := sim.Navdata()
	assert.Equal(t, StateLanded, nd.State)
	assert.Equal(t, 1, sim.Commands())

	require.NoError(t, sim.TakeOff())
	nd, _ = sim.Navdata()
	assert.Equal(t, StateHovering, nd.State)
	assert.Equal(t, int32(simTakeoffAltitude), nd.Altitude)

	require.NoError(t, sim.Progressive(ProgressiveCommand{Flag: FlagProgressive, FrontBack: -0.5, UpDown: 0.5, Turn: 1}))
	mockClock.Add(time.Second)
	nd, _ = sim.Navdata()
	assert.Equal(t, StateFlying, nd.State)
	assert.Equal(t, int32(simTakeoffAltitude+simMaxVz/2), nd.Altitude)
	assert.InDelta(t, simMaxYawRate, nd.RotZ, 1e-9)
	assert.InDelta(t, simMaxSpeed/2, nd.Vx, 1e-9)
	assert.InDelta(t, 100-simBatteryDrain, nd.BatteryPercent, 1e-9)

	require.NoError(t, sim.Progressive(ProgressiveCommand{}))
	nd, _ = sim.Navdata()
	assert.Equal(t, StateHovering, nd.State)
	assert.Zero(t, nd.Vx)

	assert.Error(t, sim.FlatTrim())
	require.NoError(t, sim.Land())
	nd, _ = sim.Navdata()
	assert.Equal(t, StateLanded, nd.State)
	assert.NoError(t, sim.FlatTrim())
}

func TestSimulatorEmergency(t *testing.T) {
	sim := NewSimulator(clock.NewMock())

	require.NoError(t, sim.TakeOff())
	require.NoError(t, sim.Reset())
	nd, _ := sim.Navdata()
	assert.True(t, nd.Emergency)
	assert.Equal(t, StateUnknown, nd.State)
	assert.Zero(t, nd.Altitude)

	assert.Error(t, sim.TakeOff())

	require.NoError(t, sim.Reset())
	nd, _ = sim.Navdata()
	assert.False(t, nd.Emergency)
	assert.Equal(t, StateLanded, nd.State)
	assert.NoError(t, sim.TakeOff())
}

func TestSimulatorConfig(t *testing.T) {
	sim := NewSimulator(nil)

	require.NoError(t, sim.ConfigEvent(KeyVideoChannel, "1"))
	v, ok := sim.Config(KeyVideoChannel)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	assert.Error(t, sim.ConfigEvent(KeyVideoCodec, "h264"))
	assert.Error(t, sim.ConfigEvent(KeyFlyingCameraEnable, "yes"))
	assert.Error(t, sim.ConfigEvent(KeyFlyingCameraMode, "1,2,3"))
	assert.Equal(t, ErrUnsupported, errors.Cause(sim.ConfigEvent("general:navdata_demo", "TRUE")))

	require.NoError(t, sim.ConfigEvent(KeyUserboxCmd, "1,20140307_180405"))
	assert.True(t, sim.Recording())
	require.NoError(t, sim.ConfigEvent(KeyUserboxCmd, "0"))
	assert.False(t, sim.Recording())

	require.NoError(t, sim.LedAnimation(LedFire, 2, 5))
	anim, freq, dur := sim.Led()
	assert.Equal(t, LedFire, anim)
	assert.Equal(t, float32(2), freq)
	assert.Equal(t, uint32(5), dur)
}

func TestSimulatorWithTeleop(t *testing.T) {
	sim := NewSimulator(clock.NewMock())
	teleop := NewTeleop(sim)

	teleop.RequestTakeoff()
	action, err := teleop.Update()
	require.NoError(t, err)
	assert.Equal(t, ActionTakeoff, action)

	teleop.SetVelocity(CommandState{LeftRight: 0.5})
	action, err = teleop.Update()
	require.NoError(t, err)
	assert.Equal(t, ActionMove, action)

	nd, _ := sim.Navdata()
	assert.Equal(t, StateFlying, nd.State)
	assert.InDelta(t, 0.5*simMaxTilt, nd.RotX, 1e-9)
}

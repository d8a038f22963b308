package ardrone

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gobot.io/x/gobot/platforms/parrot/bebop/client"
)

type fakeBebopClient struct {
	calls []string
	err   error
}

func (f *fakeBebopClient) call(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeBebopClient) Connect() error { return f.call("connect") }
func (f *fakeBebopClient) TakeOff() error { return f.call("takeoff") }
func (f *fakeBebopClient) Land() error { return f.call("land") }
func (f *fakeBebopClient) Stop() error { return f.call("stop") }
func (f *fakeBebopClient) FlatTrim() error { return f.call("flattrim") }
func (f *fakeBebopClient) StartRecording() error { return f.call("record") }
func (f *fakeBebopClient) StopRecording() error { return f.call("stoprecord") }

func newFakeBebop() (*Bebop, *fakeBebopClient, *client.Pcmd) {
	fake := &fakeBebopClient{}
	pcmd := &client.Pcmd{}
	b := &Bebop{
		client:  fake,
		setPcmd: func(p client.Pcmd) { *pcmd = p },
		state:   StateUnknown,
	}
	return b, fake, pcmd
}

func TestBebopProgressive(t *testing.T) {
	b, fake, pcmd := newFakeBebop()
	require.NoError(t, b.Connect())
	require.NoError(t, b.TakeOff())

	require.NoError(t, b.Progressive(ProgressiveCommand{Flag: FlagProgressive, LeftRight: 0.25, FrontBack: -0.5, UpDown: 1.5, Turn: -0.1}))
	assert.Equal(t, client.Pcmd{Flag: 1, Roll: 25, Pitch: 50, Yaw: -10, Gaz: 100}, *pcmd)

	nd, err := b.Navdata()
	require.NoError(t, err)
	assert.Equal(t, StateFlying, nd.State)
	assert.InDelta(t, simMaxSpeed/2, nd.Vx, 1e-9)

	require.NoError(t, b.Progressive(ProgressiveCommand{}))
	nd, _ = b.Navdata()
	assert.Equal(t, StateHovering, nd.State)
	assert.Equal(t, []string{"connect", "takeoff", "stop"}, fake.calls)
}

func TestBebopEmergency(t *testing.T) {
	b, fake, _ := newFakeBebop()

	require.NoError(t, b.Reset())
	nd, _ := b.Navdata()
	assert.True(t, nd.Emergency)
	assert.Error(t, b.TakeOff())
	assert.Error(t, b.Progressive(ProgressiveCommand{Flag: FlagProgressive}))

	require.NoError(t, b.Reset())
	assert.NoError(t, b.TakeOff())
	assert.Equal(t, []string{"stop", "land", "takeoff"}, fake.calls)
}

func TestBebopConfig(t *testing.T) {
	b, fake, _ := newFakeBebop()

	require.NoError(t, b.ConfigEvent(KeyVideoCodec, "130"))
	require.NoError(t, b.ConfigEvent(KeyUserboxCmd, "1,20140307_180405"))
	require.NoError(t, b.ConfigEvent(KeyUserboxCmd, "0"))
	require.NoError(t, b.FlatTrim())
	assert.Equal(t, []string{"record", "stoprecord", "flattrim"}, fake.calls)

	assert.Equal(t, ErrUnsupported, errors.Cause(b.ConfigEvent(KeyVideoChannel, "1")))
	assert.Equal(t, ErrUnsupported, errors.Cause(b.LedAnimation(LedFire, 1, 1)))

	fake.err = errors.New("no link")
	assert.Error(t, b.Land())
}

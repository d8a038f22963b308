package rosbridge

import (
	"testing"
	"time"

	"ardrone/ardrone"
	"ardrone/msgs/ardrone_autonomy"
	"ardrone/msgs/geographic_msgs"
	"ardrone/msgs/geometry_msgs"
	"ardrone/msgs/std_msgs"
	"ardrone/msgs/std_srvs"
	"ardrone/msgs/tf2_msgs"

	"github.com/akio/rosgo/ros"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	msgs []ros.Message
}

func (p *fakePublisher) Publish(msg ros.Message) { p.msgs = append(p.msgs, msg) }
func (p *fakePublisher) GetNumSubscribers() int { return 1 }
func (p *fakePublisher) Shutdown() {}

func newTestBridge() (*Bridge, *ardrone.Simulator) {
	sim := ardrone.NewSimulator(clock.NewMock())
	teleop := ardrone.NewTeleop(sim)
	services := ardrone.NewServices(sim)
	return NewBridge(nil, teleop, services), sim
}

func TestTopicsFeedTeleop(t *testing.T) {
	b, sim := newTestBridge()

	b.onCmdVel(&geometry_msgs.Twist{Linear: geometry_msgs.Vector3{X: 0.5}})
	assert.Equal(t, -0.5, b.teleop.State().FrontBack)

	b.onTakeoff(&std_msgs.Empty{})
	b.onLand(&std_msgs.Empty{})
	b.onReset(&std_msgs.Empty{})
	reset, takeoff, land := b.teleop.Pending()
	assert.True(t, reset)
	assert.True(t, takeoff)
	assert.True(t, land)

	// Reset first: the simulator enters emergency.
	_, err := b.teleop.Update()
	require.NoError(t, err)
	nd, _ := sim.Navdata()
	assert.True(t, nd.Emergency)
}

func TestServiceHandlers(t *testing.T) {
	b, sim := newTestBridge()

	cam := &ardrone_autonomy.CamSelect{Request: ardrone_autonomy.CamSelectRequest{Channel: 3}}
	require.NoError(t, b.setCamChannel(cam))
	assert.True(t, cam.Response.Result)
	v, _ := sim.Config(ardrone.KeyVideoChannel)
	assert.Equal(t, "1", v)

	require.NoError(t, b.toggleCam(&std_srvs.Empty{}))
	assert.Equal(t, 0, b.services.CamChannel())

	rec := &ardrone_autonomy.RecordEnable{Request: ardrone_autonomy.RecordEnableRequest{Enable: true}}
	require.NoError(t, b.setRecord(rec))
	assert.True(t, rec.Response.Result)
	assert.True(t, sim.Recording())

	led := &ardrone_autonomy.LedAnim{Request: ardrone_autonomy.LedAnimRequest{AnimType: 5, Freq: -2, Duration: 3}}
	require.NoError(t, b.setLedAnimation(led))
	assert.True(t, led.Response.Result)
	anim, freq, _ := sim.Led()
	assert.Equal(t, ardrone.LedFire, anim)
	assert.Equal(t, float32(2), freq)

	fa := &ardrone_autonomy.FlightAnim{Request: ardrone_autonomy.FlightAnimRequest{AnimType: 8}}
	require.NoError(t, b.setFlightAnimation(fa))
	assert.True(t, fa.Response.Result)
	v, _ = sim.Config(ardrone.KeyFlightAnim)
	assert.Equal(t, "8,2000", v)

	auto := &ardrone_autonomy.RecordEnable{Request: ardrone_autonomy.RecordEnableRequest{Enable: true}}
	require.NoError(t, b.setAutoFlight(auto))
	assert.True(t, auto.Response.Result)

	require.NoError(t, b.flatTrim(&std_srvs.Empty{}))
	// Calibration is off: logged, never a ROS error.
	require.NoError(t, b.imuRecalib(&std_srvs.Empty{}))
}

func TestGPSTargetHandler(t *testing.T) {
	b, sim := newTestBridge()

	gps := &ardrone_autonomy.SetGPSTarget{}
	gps.Request.Target.Position = geographic_msgs.GeoPoint{Latitude: 1, Longitude: 2, Altitude: 3}
	require.NoError(t, b.setGPSTarget(gps))
	assert.True(t, gps.Response.Result)
	v, _ := sim.Config(ardrone.KeyFlyingCameraMode)
	assert.Equal(t, "10000,0,10000000,20000000,3000,500,500,525000,0,0", v)

	bad := &ardrone_autonomy.SetGPSTarget{}
	bad.Request.Target.Position.Latitude = 100
	require.NoError(t, b.setGPSTarget(bad))
	assert.False(t, bad.Response.Result)
}

func TestPublish(t *testing.T) {
	b, _ := newTestBridge()

	// Nothing registered yet.
	b.PublishNavdata(ardrone.Navdata{})
	b.publishEcho()
	b.publishTF(time.Now())

	nav, echo, tf := &fakePublisher{}, &fakePublisher{}, &fakePublisher{}
	b.navPub, b.echoPub, b.tfPub = nav, echo, tf

	b.PublishNavdata(ardrone.Navdata{State: ardrone.StateLanded})
	b.PublishNavdata(ardrone.Navdata{State: ardrone.StateHovering})
	require.Len(t, nav.msgs, 2)
	second := nav.msgs[1].(*ardrone_autonomy.NavdataLite)
	assert.Equal(t, uint32(1), second.Header.Seq)
	assert.Equal(t, uint32(ardrone.StateHovering), second.State)

	b.teleop.SetVelocity(ardrone.CommandState{Turn: 0.5})
	b.publishEcho()
	require.Len(t, echo.msgs, 1)
	assert.Equal(t, -0.5, echo.msgs[0].(*geometry_msgs.Twist).Angular.Z)

	now := time.Unix(1700000000, 0)
	b.publishTF(now)
	require.Len(t, tf.msgs, 1)
	frames := tf.msgs[0].(*tf2_msgs.TFMessage).Transforms
	require.Len(t, frames, 2)
	assert.Equal(t, FrameFrontCam, frames[0].ChildFrameId)
	assert.Equal(t, FrameBottomCam, frames[1].ChildFrameId)
	assert.Equal(t, uint32(now.Unix()), frames[0].Header.Stamp.Sec)
}

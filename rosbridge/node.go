// Package rosbridge exposes the driver on a ROS node: velocity and trigger
// topics feed the teleop loop, drone services become ROS services and
// telemetry is published back.
package rosbridge

// Message files under msgs/ are gengo output; source rosgo's environment first.
//go:generate gengo msg std_msgs/Header
//go:generate gengo msg std_msgs/Empty
//go:generate gengo msg geometry_msgs/Twist
//go:generate gengo msg geographic_msgs/WayPoint
//go:generate gengo msg ardrone_autonomy/NavdataLite
//go:generate gengo msg tf2_msgs/TFMessage
//go:generate gengo srv std_srvs/Empty
//go:generate gengo srv ardrone_autonomy/CamSelect
//go:generate gengo srv ardrone_autonomy/LedAnim
//go:generate gengo srv ardrone_autonomy/FlightAnim
//go:generate gengo srv ardrone_autonomy/RecordEnable
//go:generate gengo srv ardrone_autonomy/SetGPSTarget

import (
	"context"
	"sync"
	"time"

	"ardrone/ardrone"
	"ardrone/msgs/ardrone_autonomy"
	"ardrone/msgs/geometry_msgs"
	"ardrone/msgs/std_msgs"
	"ardrone/msgs/std_srvs"
	"ardrone/msgs/tf2_msgs"

	"github.com/akio/rosgo/ros"
	"github.com/golang/glog"
)

// Topic and service names, relative to the node namespace.
const (
	TopicCmdVel  = "cmd_vel"
	TopicTakeoff = "ardrone/takeoff"
	TopicLand    = "ardrone/land"
	TopicReset   = "ardrone/reset"
	TopicNavdata = "ardrone/navdata"
	TopicCmdEcho = "ardrone/cmd_echo"
	TopicTF      = "/tf"

	SrvSetCamChannel      = "ardrone/setcamchannel"
	SrvToggleCam          = "ardrone/togglecam"
	SrvSetRecord          = "ardrone/setrecord"
	SrvSetLedAnimation    = "ardrone/setledanimation"
	SrvSetFlightAnimation = "ardrone/setflightanimation"
	SrvFlatTrim           = "ardrone/flattrim"
	SrvSetAutoFlight      = "ardrone/setautoflight"
	SrvSetGPSTarget       = "ardrone/setgpstarget"
	SrvIMURecalib         = "ardrone/imu_recalib"
)

// echoPeriod is the rate of the commanded velocity echo and the camera
// transforms.
const echoPeriod = 100 * time.Millisecond

// Bridge wires a Teleop and Services onto a ROS node.
type Bridge struct {
	node     ros.Node
	teleop   *ardrone.Teleop
	services *ardrone.Services
	start    time.Time

	mu      sync.Mutex
	navPub  ros.Publisher
	echoPub ros.Publisher
	tfPub   ros.Publisher
	navSeq  uint32
}

// NewBridge returns an unregistered bridge.
func NewBridge(node ros.Node, teleop *ardrone.Teleop, services *ardrone.Services) *Bridge {
	return &Bridge{
		node:     node,
		teleop:   teleop,
		services: services,
		start:    time.Now(),
	}
}

// Register subscribes to the inbound topics, advertises the services and
// the publishers.
func (b *Bridge) Register() {
	b.node.NewSubscriber(TopicCmdVel, geometry_msgs.MsgTwist, b.onCmdVel)
	b.node.NewSubscriber(TopicTakeoff, std_msgs.MsgEmpty, b.onTakeoff)
	b.node.NewSubscriber(TopicLand, std_msgs.MsgEmpty, b.onLand)
	b.node.NewSubscriber(TopicReset, std_msgs.MsgEmpty, b.onReset)

	b.node.NewServiceServer(SrvSetCamChannel, ardrone_autonomy.SrvCamSelect, b.setCamChannel)
	b.node.NewServiceServer(SrvToggleCam, std_srvs.SrvEmpty, b.toggleCam)
	b.node.NewServiceServer(SrvSetRecord, ardrone_autonomy.SrvRecordEnable, b.setRecord)
	b.node.NewServiceServer(SrvSetLedAnimation, ardrone_autonomy.SrvLedAnim, b.setLedAnimation)
	b.node.NewServiceServer(SrvSetFlightAnimation, ardrone_autonomy.SrvFlightAnim, b.setFlightAnimation)
	b.node.NewServiceServer(SrvFlatTrim, std_srvs.SrvEmpty, b.flatTrim)
	b.node.NewServiceServer(SrvSetAutoFlight, ardrone_autonomy.SrvRecordEnable, b.setAutoFlight)
	b.node.NewServiceServer(SrvSetGPSTarget, ardrone_autonomy.SrvSetGPSTarget, b.setGPSTarget)
	b.node.NewServiceServer(SrvIMURecalib, std_srvs.SrvEmpty, b.imuRecalib)

	b.mu.Lock()
	b.navPub = b.node.NewPublisher(TopicNavdata, ardrone_autonomy.MsgNavdataLite)
	b.echoPub = b.node.NewPublisher(TopicCmdEcho, geometry_msgs.MsgTwist)
	b.tfPub = b.node.NewPublisher(TopicTF, tf2_msgs.MsgTFMessage)
	b.mu.Unlock()

	b.node.Logger().Info("ardrone driver topics and services registered")
}

func (b *Bridge) onCmdVel(msg *geometry_msgs.Twist) {
	b.teleop.SetVelocity(TwistToCommand(msg))
}

func (b *Bridge) onTakeoff(*std_msgs.Empty) {
	b.teleop.RequestTakeoff()
}

func (b *Bridge) onLand(*std_msgs.Empty) {
	b.teleop.RequestLand()
}

func (b *Bridge) onReset(*std_msgs.Empty) {
	b.teleop.RequestReset()
}

func (b *Bridge) setCamChannel(srv *ardrone_autonomy.CamSelect) error {
	_, err := b.services.SetCamChannel(srv.Request.Channel)
	srv.Response.Result = result(SrvSetCamChannel, err)
	return nil
}

func (b *Bridge) toggleCam(*std_srvs.Empty) error {
	_, err := b.services.ToggleCam()
	result(SrvToggleCam, err)
	return nil
}

func (b *Bridge) setRecord(srv *ardrone_autonomy.RecordEnable) error {
	srv.Response.Result = result(SrvSetRecord, b.services.SetRecord(srv.Request.Enable))
	return nil
}

func (b *Bridge) setLedAnimation(srv *ardrone_autonomy.LedAnim) error {
	req := srv.Request
	srv.Response.Result = result(SrvSetLedAnimation, b.services.SetLedAnimation(req.AnimType, req.Freq, req.Duration))
	return nil
}

func (b *Bridge) setFlightAnimation(srv *ardrone_autonomy.FlightAnim) error {
	req := srv.Request
	srv.Response.Result = result(SrvSetFlightAnimation, b.services.SetFlightAnimation(req.AnimType, req.Duration))
	return nil
}

func (b *Bridge) flatTrim(*std_srvs.Empty) error {
	result(SrvFlatTrim, b.services.FlatTrim())
	return nil
}

func (b *Bridge) setAutoFlight(srv *ardrone_autonomy.RecordEnable) error {
	srv.Response.Result = result(SrvSetAutoFlight, b.services.SetAutonomousFlight(srv.Request.Enable))
	return nil
}

func (b *Bridge) setGPSTarget(srv *ardrone_autonomy.SetGPSTarget) error {
	w := WayPointFromMsg(&srv.Request.Target)
	srv.Response.Result = result(SrvSetGPSTarget, b.services.SetGPSTarget(w))
	return nil
}

func (b *Bridge) imuRecalib(*std_srvs.Empty) error {
	result(SrvIMURecalib, b.services.RecalibrateIMU())
	return nil
}

// result logs a failed service call. Failures go back to the caller in
// the response, never as a ROS error.
func result(service string, err error) bool {
	if err != nil {
		glog.Errorf("%s: %v", service, err)
		return false
	}
	return true
}

// PublishNavdata publishes one telemetry sample. It is the poller's sink.
func (b *Bridge) PublishNavdata(nd ardrone.Navdata) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.navPub == nil {
		return
	}
	msg := NavdataToMsg(nd, b.navSeq, b.start)
	b.navSeq++
	b.navPub.Publish(&msg)
}

func (b *Bridge) publishEcho() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.echoPub == nil {
		return
	}
	msg := CommandToTwist(b.teleop.State())
	b.echoPub.Publish(&msg)
}

func (b *Bridge) publishTF(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tfPub == nil {
		return
	}
	b.tfPub.Publish(&tf2_msgs.TFMessage{Transforms: CameraTransforms(now)})
}

// Spin services ROS callbacks until ctx is done or the node shuts down.
func (b *Bridge) Spin(ctx context.Context) error {
	lastEcho := time.Now()
	for b.node.OK() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		b.node.SpinOnce()
		if time.Since(lastEcho) >= echoPeriod {
			lastEcho = time.Now()
			b.publishEcho()
			b.publishTF(lastEcho)
		}
	}
	return nil
}

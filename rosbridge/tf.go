package rosbridge

import (
	"math"
	"time"

	"ardrone/msgs/geometry_msgs"
	"ardrone/msgs/std_msgs"

	"github.com/akio/rosgo/ros"
)

// Frames of the drone body and its two cameras.
const (
	FrameBase      = "ardrone_base_link"
	FrameFrontCam  = "ardrone_base_frontcam"
	FrameBottomCam = "ardrone_base_bottomcam"
)

const deg2rad = math.Pi / 180

// cameraMount is a fixed camera pose relative to FrameBase, as a
// translation in meters and roll, pitch, yaw in degrees.
type cameraMount struct {
	frame            string
	x, y, z          float64
	roll, pitch, yaw float64
}

var cameraMounts = []cameraMount{
	{frame: FrameFrontCam, x: 0.21, roll: -90, yaw: -90},
	{frame: FrameBottomCam, y: -0.02, roll: 180, yaw: 90},
}

// CameraTransforms returns the static base to camera transforms stamped at ts.
func CameraTransforms(ts time.Time) []geometry_msgs.TransformStamped {
	stamp := ros.NewTime(uint32(ts.Unix()), uint32(ts.Nanosecond()))
	out := make([]geometry_msgs.TransformStamped, 0, len(cameraMounts))
	for _, m := range cameraMounts {
		out = append(out, geometry_msgs.TransformStamped{
			Header:       std_msgs.Header{Stamp: stamp, FrameId: FrameBase},
			ChildFrameId: m.frame,
			Transform: geometry_msgs.Transform{
				Translation: geometry_msgs.Vector3{X: m.x, Y: m.y, Z: m.z},
				Rotation:    quaternionFromRPY(m.roll*deg2rad, m.pitch*deg2rad, m.yaw*deg2rad),
			},
		})
	}
	return out
}

// quaternionFromRPY composes fixed-axis rotations about x, then y, then z.
func quaternionFromRPY(roll, pitch, yaw float64) geometry_msgs.Quaternion {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	return geometry_msgs.Quaternion{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}

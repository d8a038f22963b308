package rosbridge

import (
	"math"
	"testing"
	"time"

	"ardrone/msgs/geometry_msgs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertQuaternion(t *testing.T, want, got geometry_msgs.Quaternion) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.InDelta(t, want.Z, got.Z, 1e-9)
	assert.InDelta(t, want.W, got.W, 1e-9)
}

func TestQuaternionFromRPY(t *testing.T) {
	assertQuaternion(t, geometry_msgs.Quaternion{W: 1}, quaternionFromRPY(0, 0, 0))
	assertQuaternion(t, geometry_msgs.Quaternion{Z: math.Sqrt2 / 2, W: math.Sqrt2 / 2}, quaternionFromRPY(0, 0, math.Pi/2))
	assertQuaternion(t, geometry_msgs.Quaternion{X: 1}, quaternionFromRPY(math.Pi, 0, 0))
}

func TestCameraTransforms(t *testing.T) {
	ts := time.Unix(1700000000, 250)
	tfs := CameraTransforms(ts)
	require.Len(t, tfs, 2)

	front, bottom := tfs[0], tfs[1]
	for _, tf := range tfs {
		assert.Equal(t, FrameBase, tf.Header.FrameId)
		assert.Equal(t, uint32(1700000000), tf.Header.Stamp.Sec)
		assert.Equal(t, uint32(250), tf.Header.Stamp.NSec)
	}

	assert.Equal(t, FrameFrontCam, front.ChildFrameId)
	assert.Equal(t, geometry_msgs.Vector3{X: 0.21}, front.Transform.Translation)
	assertQuaternion(t, geometry_msgs.Quaternion{X: -0.5, Y: 0.5, Z: -0.5, W: 0.5}, front.Transform.Rotation)

	assert.Equal(t, FrameBottomCam, bottom.ChildFrameId)
	assert.Equal(t, geometry_msgs.Vector3{Y: -0.02}, bottom.Transform.Translation)
	assertQuaternion(t, geometry_msgs.Quaternion{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, bottom.Transform.Rotation)
}

package rosbridge

import (
	"testing"
	"time"

	"ardrone/ardrone"
	"ardrone/msgs/geographic_msgs"
	"ardrone/msgs/geometry_msgs"
	"ardrone/msgs/uuid_msgs"

	"github.com/akio/rosgo/ros"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTwistToCommand(t *testing.T) {
	twist := &geometry_msgs.Twist{
		Linear:  geometry_msgs.Vector3{X: 0.5, Y: -0.25, Z: 0.75},
		Angular: geometry_msgs.Vector3{X: 0.1, Y: 0.2, Z: 1},
	}
	cmd := TwistToCommand(twist)
	assert.Equal(t, ardrone.CommandState{
		FrontBack: -0.5,
		LeftRight: 0.25,
		UpDown:    0.75,
		Turn:      -1,
		RollHint:  0.1,
		PitchHint: 0.2,
	}, cmd)

	assert.Equal(t, *twist, CommandToTwist(cmd))
}

func TestNavdataToMsg(t *testing.T) {
	start := time.Unix(1000, 0)
	nd := ardrone.Navdata{
		State:          ardrone.StateHovering,
		BatteryPercent: 87.5,
		RotX:           1.5,
		RotY:           -2,
		RotZ:           90,
		Altitude:       1200,
		Vx:             100,
		Timestamp:      time.Unix(1002, 500000000),
	}
	msg := NavdataToMsg(nd, 7, start)

	assert.Equal(t, uint32(7), msg.Header.Seq)
	assert.Equal(t, ros.NewTime(1002, 500000000), msg.Header.Stamp)
	assert.Equal(t, uint32(4), msg.State)
	assert.Equal(t, float32(87.5), msg.BatteryPercent)
	assert.Equal(t, float32(-2), msg.RotY)
	assert.Equal(t, int32(1200), msg.Altd)
	assert.Equal(t, float32(100), msg.Vx)
	assert.Equal(t, float32(2500000), msg.Tm)
	assert.Equal(t, FrameBase, msg.Header.FrameId)

	// The trimmed layout must not claim the full ardrone_autonomy/Navdata type.
	assert.Equal(t, "ardrone_autonomy/NavdataLite", msg.Type().Name())
	assert.NotEqual(t, "ardrone_autonomy/Navdata", msg.Type().Name())
}

func TestWayPointFromMsg(t *testing.T) {
	msg := &geographic_msgs.WayPoint{
		Id:       uuid_msgs.UniqueID{Uuid: [16]uint8{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}},
		Position: geographic_msgs.GeoPoint{Latitude: 1, Longitude: 2, Altitude: 3},
		Props:    []geographic_msgs.KeyValue{{Key: "velocity", Value: "2"}},
	}
	w := WayPointFromMsg(msg)

	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", w.ID.String())
	assert.Equal(t, 2.0, w.Longitude)
	assert.Equal(t, []ardrone.KeyValue{{Key: "velocity", Value: "2"}}, w.Props)
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, ros.LogLevelDebug, Severity("debug"))
	assert.Equal(t, ros.LogLevelError, Severity("error"))
	assert.Equal(t, ros.LogLevelInfo, Severity("bogus"))
}

type params map[string]interface{}

func (p params) GetParam(key string) (interface{}, error) {
	v, ok := p[key]
	if !ok {
		return nil, errors.Errorf("%s not set", key)
	}
	return v, nil
}

func TestParams(t *testing.T) {
	p := params{"flag": int32(1), "off": false, "eps": 0.01, "text": "x"}

	assert.True(t, BoolParam(p, "flag", false))
	assert.False(t, BoolParam(p, "off", true))
	assert.True(t, BoolParam(p, "missing", true))
	assert.False(t, BoolParam(p, "text", false))

	assert.Equal(t, 0.01, FloatParam(p, "eps", 1))
	assert.Equal(t, 1.0, FloatParam(p, "flag", 0))
	assert.Equal(t, 0.5, FloatParam(p, "missing", 0.5))
}

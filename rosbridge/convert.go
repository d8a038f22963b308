package rosbridge

import (
	"time"

	"ardrone/ardrone"
	"ardrone/msgs/ardrone_autonomy"
	"ardrone/msgs/geographic_msgs"
	"ardrone/msgs/geometry_msgs"
	"ardrone/msgs/std_msgs"

	"github.com/akio/rosgo/ros"
	"github.com/google/uuid"
)

// TwistToCommand maps a ROS velocity onto the drone's stick axes. ROS is
// x forward, y left, z up with counter-clockwise yaw; the drone expects
// forward, right and clockwise turns as positive, hence the inversions.
func TwistToCommand(msg *geometry_msgs.Twist) ardrone.CommandState {
	return ardrone.CommandState{
		FrontBack: -msg.Linear.X,
		LeftRight: -msg.Linear.Y,
		UpDown:    msg.Linear.Z,
		Turn:      -msg.Angular.Z,
		RollHint:  msg.Angular.X,
		PitchHint: msg.Angular.Y,
	}
}

// CommandToTwist is the inverse of TwistToCommand.
func CommandToTwist(c ardrone.CommandState) geometry_msgs.Twist {
	return geometry_msgs.Twist{
		Linear: geometry_msgs.Vector3{
			X: -c.FrontBack,
			Y: -c.LeftRight,
			Z: c.UpDown,
		},
		Angular: geometry_msgs.Vector3{
			X: c.RollHint,
			Y: c.PitchHint,
			Z: -c.Turn,
		},
	}
}

// NavdataToMsg converts a telemetry sample. tm is the sample time in
// microseconds since start.
func NavdataToMsg(nd ardrone.Navdata, seq uint32, start time.Time) ardrone_autonomy.NavdataLite {
	ts := nd.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return ardrone_autonomy.NavdataLite{
		Header: std_msgs.Header{
			Seq:     seq,
			Stamp:   ros.NewTime(uint32(ts.Unix()), uint32(ts.Nanosecond())),
			FrameId: FrameBase,
		},
		BatteryPercent: float32(nd.BatteryPercent),
		State:          uint32(nd.State),
		RotX:           float32(nd.RotX),
		RotY:           float32(nd.RotY),
		RotZ:           float32(nd.RotZ),
		Altd:           nd.Altitude,
		Vx:             float32(nd.Vx),
		Vy:             float32(nd.Vy),
		Vz:             float32(nd.Vz),
		Tm:             float32(ts.Sub(start).Microseconds()),
	}
}

// WayPointFromMsg converts a geographic_msgs/WayPoint.
func WayPointFromMsg(msg *geographic_msgs.WayPoint) ardrone.WayPoint {
	w := ardrone.WayPoint{
		ID:        uuid.UUID(msg.Id.Uuid),
		Latitude:  msg.Position.Latitude,
		Longitude: msg.Position.Longitude,
		Altitude:  msg.Position.Altitude,
	}
	for _, p := range msg.Props {
		w.Props = append(w.Props, ardrone.KeyValue{Key: p.Key, Value: p.Value})
	}
	return w
}

// Severity maps a config log level onto the rosgo logger.
func Severity(level string) ros.LogLevel {
	switch level {
	case "debug":
		return ros.LogLevelDebug
	case "warn":
		return ros.LogLevelWarn
	case "error":
		return ros.LogLevelError
	case "fatal":
		return ros.LogLevelFatal
	}
	return ros.LogLevelInfo
}

// ParamGetter reads the parameter server.
type ParamGetter interface {
	GetParam(key string) (interface{}, error)
}

// BoolParam returns the boolean parameter key, or def when unset. The
// parameter server hands back ints for 0/1 flags, those count too.
func BoolParam(p ParamGetter, key string, def bool) bool {
	v, err := p.GetParam(key)
	if err != nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case int32:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	}
	return def
}

// FloatParam returns the numeric parameter key, or def when unset.
func FloatParam(p ParamGetter, key string, def float64) float64 {
	v, err := p.GetParam(key)
	if err != nil {
		return def
	}
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	case int32:
		return float64(f)
	case int:
		return float64(f)
	case int64:
		return float64(f)
	}
	return def
}

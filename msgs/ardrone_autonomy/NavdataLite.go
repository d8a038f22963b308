// Automatically generated from the message definition "ardrone_autonomy/NavdataLite.msg"
package ardrone_autonomy

import (
	"bytes"
	"encoding/binary"

	"ardrone/msgs/std_msgs"

	"github.com/akio/rosgo/ros"
)

type _MsgNavdataLite struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgNavdataLite) Text() string {
	return t.text
}

func (t *_MsgNavdataLite) Name() string {
	return t.name
}

func (t *_MsgNavdataLite) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgNavdataLite) NewMessage() ros.Message {
	m := new(NavdataLite)
	m.Header = std_msgs.Header{}
	m.BatteryPercent = 0.0
	m.State = 0
	m.RotX = 0.0
	m.RotY = 0.0
	m.RotZ = 0.0
	m.Altd = 0
	m.Vx = 0.0
	m.Vy = 0.0
	m.Vz = 0.0
	m.Tm = 0.0
	return m
}

var (
	MsgNavdataLite = &_MsgNavdataLite{
		`Header header

# 0 to 100
float32 batteryPercent

# 0: Unknown, 1: Inited, 2: Landed, 3,7: Flying, 4: Hovering, 5: Test
# 6: Taking off, 8: Landing, 9: Looping
uint32 state

# left/right tilt, front/back tilt and orientation in degrees
float32 rotX
float32 rotY
float32 rotZ

# estimated altitude (mm)
int32 altd

# linear velocity (mm/sec)
float32 vx
float32 vy
float32 vz

# timestamp in microseconds
float32 tm

================================================================================
MSG: std_msgs/Header
uint32 seq
time stamp
string frame_id
`,
		"ardrone_autonomy/NavdataLite",
		"a5250819ea5a5c6c84e0f9316ab36061",
	}
)

type NavdataLite struct {
	Header         std_msgs.Header `rosmsg:"header:Header"`
	BatteryPercent float32         `rosmsg:"batteryPercent:float32"`
	State          uint32          `rosmsg:"state:uint32"`
	RotX           float32         `rosmsg:"rotX:float32"`
	RotY           float32         `rosmsg:"rotY:float32"`
	RotZ           float32         `rosmsg:"rotZ:float32"`
	Altd           int32           `rosmsg:"altd:int32"`
	Vx             float32         `rosmsg:"vx:float32"`
	Vy             float32         `rosmsg:"vy:float32"`
	Vz             float32         `rosmsg:"vz:float32"`
	Tm             float32         `rosmsg:"tm:float32"`
}

func (m *NavdataLite) Type() ros.MessageType {
	return MsgNavdataLite
}

func (m *NavdataLite) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.BatteryPercent)
	binary.Write(buf, binary.LittleEndian, m.State)
	binary.Write(buf, binary.LittleEndian, m.RotX)
	binary.Write(buf, binary.LittleEndian, m.RotY)
	binary.Write(buf, binary.LittleEndian, m.RotZ)
	binary.Write(buf, binary.LittleEndian, m.Altd)
	binary.Write(buf, binary.LittleEndian, m.Vx)
	binary.Write(buf, binary.LittleEndian, m.Vy)
	binary.Write(buf, binary.LittleEndian, m.Vz)
	binary.Write(buf, binary.LittleEndian, m.Tm)
	return err
}

func (m *NavdataLite) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.BatteryPercent); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.State); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.RotX); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.RotY); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.RotZ); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Altd); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Vx); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Vy); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Vz); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Tm); err != nil {
		return err
	}
	return err
}

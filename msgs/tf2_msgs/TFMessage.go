// Automatically generated from the message definition "tf2_msgs/TFMessage.msg"
package tf2_msgs

import (
	"bytes"
	"encoding/binary"

	"ardrone/msgs/geometry_msgs"

	"github.com/akio/rosgo/ros"
)

type _MsgTFMessage struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgTFMessage) Text() string {
	return t.text
}

func (t *_MsgTFMessage) Name() string {
	return t.name
}

func (t *_MsgTFMessage) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgTFMessage) NewMessage() ros.Message {
	m := new(TFMessage)
	m.Transforms = []geometry_msgs.TransformStamped{}
	return m
}

var (
	MsgTFMessage = &_MsgTFMessage{
		`geometry_msgs/TransformStamped[] transforms

================================================================================
MSG: geometry_msgs/TransformStamped
# This expresses a transform from coordinate frame header.frame_id
# to the coordinate frame child_frame_id
Header header
string child_frame_id # the frame id of the child frame
Transform transform

================================================================================
MSG: std_msgs/Header
uint32 seq
time stamp
string frame_id

================================================================================
MSG: geometry_msgs/Transform
Vector3 translation
Quaternion rotation

================================================================================
MSG: geometry_msgs/Vector3
float64 x
float64 y
float64 z

================================================================================
MSG: geometry_msgs/Quaternion
float64 x
float64 y
float64 z
float64 w
`,
		"tf2_msgs/TFMessage",
		"94810edda583a504dfda3829e70d7eec",
	}
)

type TFMessage struct {
	Transforms []geometry_msgs.TransformStamped `rosmsg:"transforms:TransformStamped[]"`
}

func (m *TFMessage) Type() ros.MessageType {
	return MsgTFMessage
}

func (m *TFMessage) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Transforms)))
	for _, elem := range m.Transforms {
		if err = elem.Serialize(buf); err != nil {
			return err
		}
	}
	return err
}

func (m *TFMessage) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Transforms = make([]geometry_msgs.TransformStamped, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.Transforms[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	return err
}

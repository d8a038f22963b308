// Automatically generated from the message definition "geographic_msgs/WayPoint.msg"
package geographic_msgs

import (
	"bytes"
	"encoding/binary"

	"ardrone/msgs/uuid_msgs"

	"github.com/akio/rosgo/ros"
)

type _MsgWayPoint struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgWayPoint) Text() string {
	return t.text
}

func (t *_MsgWayPoint) Name() string {
	return t.name
}

func (t *_MsgWayPoint) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgWayPoint) NewMessage() ros.Message {
	m := new(WayPoint)
	m.Id = uuid_msgs.UniqueID{}
	m.Position = GeoPoint{}
	m.Props = []KeyValue{}
	return m
}

var (
	MsgWayPoint = &_MsgWayPoint{
		`# Way-point element for a geographic map.
uuid_msgs/UniqueID id
GeoPoint position
KeyValue[] props

================================================================================
MSG: uuid_msgs/UniqueID
uint8[16] uuid

================================================================================
MSG: geographic_msgs/GeoPoint
float64 latitude
float64 longitude
float64 altitude

================================================================================
MSG: geographic_msgs/KeyValue
string key
string value
`,
		"geographic_msgs/WayPoint",
		"ef04f823aef332455a49eaec3f1761b7",
	}
)

type WayPoint struct {
	Id       uuid_msgs.UniqueID `rosmsg:"id:UniqueID"`
	Position GeoPoint           `rosmsg:"position:GeoPoint"`
	Props    []KeyValue         `rosmsg:"props:KeyValue[]"`
}

func (m *WayPoint) Type() ros.MessageType {
	return MsgWayPoint
}

func (m *WayPoint) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Id.Serialize(buf); err != nil {
		return err
	}
	if err = m.Position.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Props)))
	for _, elem := range m.Props {
		if err = elem.Serialize(buf); err != nil {
			return err
		}
	}
	return err
}

func (m *WayPoint) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Id.Deserialize(buf); err != nil {
		return err
	}
	if err = m.Position.Deserialize(buf); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Props = make([]KeyValue, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.Props[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	return err
}

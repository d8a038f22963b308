// Automatically generated from the message definition "geographic_msgs/GeoPoint.msg"
package geographic_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

type _MsgGeoPoint struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgGeoPoint) Text() string {
	return t.text
}

func (t *_MsgGeoPoint) Name() string {
	return t.name
}

func (t *_MsgGeoPoint) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgGeoPoint) NewMessage() ros.Message {
	m := new(GeoPoint)
	m.Latitude = 0.0
	m.Longitude = 0.0
	m.Altitude = 0.0
	return m
}

var (
	MsgGeoPoint = &_MsgGeoPoint{
		`# Geographic point, using the WGS 84 reference ellipsoid.
float64 latitude
float64 longitude
float64 altitude
`,
		"geographic_msgs/GeoPoint",
		"c48027a852aeff972be80478ff38e81a",
	}
)

type GeoPoint struct {
	Latitude  float64 `rosmsg:"latitude:float64"`
	Longitude float64 `rosmsg:"longitude:float64"`
	Altitude  float64 `rosmsg:"altitude:float64"`
}

func (m *GeoPoint) Type() ros.MessageType {
	return MsgGeoPoint
}

func (m *GeoPoint) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Latitude)
	binary.Write(buf, binary.LittleEndian, m.Longitude)
	binary.Write(buf, binary.LittleEndian, m.Altitude)
	return err
}

func (m *GeoPoint) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Latitude); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Longitude); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Altitude); err != nil {
		return err
	}
	return err
}

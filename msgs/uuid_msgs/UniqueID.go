// Automatically generated from the message definition "uuid_msgs/UniqueID.msg"
package uuid_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

type _MsgUniqueID struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgUniqueID) Text() string {
	return t.text
}

func (t *_MsgUniqueID) Name() string {
	return t.name
}

func (t *_MsgUniqueID) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgUniqueID) NewMessage() ros.Message {
	m := new(UniqueID)
	return m
}

var (
	MsgUniqueID = &_MsgUniqueID{
		`# A universally unique identifier (UUID).
uint8[16] uuid
`,
		"uuid_msgs/UniqueID",
		"fec2a93b6f5367ee8112c9c0b41ff310",
	}
)

type UniqueID struct {
	Uuid [16]uint8 `rosmsg:"uuid:uint8[16]"`
}

func (m *UniqueID) Type() ros.MessageType {
	return MsgUniqueID
}

func (m *UniqueID) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Uuid)
	return err
}

func (m *UniqueID) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Uuid); err != nil {
		return err
	}
	return err
}

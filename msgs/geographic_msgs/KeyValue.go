// Automatically generated from the message definition "geographic_msgs/KeyValue.msg"
package geographic_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

type _MsgKeyValue struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgKeyValue) Text() string {
	return t.text
}

func (t *_MsgKeyValue) Name() string {
	return t.name
}

func (t *_MsgKeyValue) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgKeyValue) NewMessage() ros.Message {
	m := new(KeyValue)
	m.Key = ""
	m.Value = ""
	return m
}

var (
	MsgKeyValue = &_MsgKeyValue{
		`# Geographic map tag (key, value) pair
string key
string value
`,
		"geographic_msgs/KeyValue",
		"cf57fdc6617a881a88c16e768132149c",
	}
)

type KeyValue struct {
	Key   string `rosmsg:"key:string"`
	Value string `rosmsg:"value:string"`
}

func (m *KeyValue) Type() ros.MessageType {
	return MsgKeyValue
}

func (m *KeyValue) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Key))))
	buf.Write([]byte(m.Key))
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Value))))
	buf.Write([]byte(m.Value))
	return err
}

func (m *KeyValue) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Key = string(data)
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Value = string(data)
	}
	return err
}

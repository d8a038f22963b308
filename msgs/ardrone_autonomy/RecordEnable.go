// Automatically generated from the service definition "ardrone_autonomy/RecordEnable.srv"
package ardrone_autonomy

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

// Service type metadata
type _SrvRecordEnable struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvRecordEnable) Name() string { return t.name }
func (t *_SrvRecordEnable) MD5Sum() string { return t.md5sum }
func (t *_SrvRecordEnable) Text() string { return t.text }
func (t *_SrvRecordEnable) RequestType() ros.MessageType { return t.reqType }
func (t *_SrvRecordEnable) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvRecordEnable) NewService() ros.Service {
	return new(RecordEnable)
}

var (
	SrvRecordEnable = &_SrvRecordEnable{
		"ardrone_autonomy/RecordEnable",
		"29d58f387352c15c4e4f5763022ae875",
		`bool enable
---
bool result
`,
		MsgRecordEnableRequest,
		MsgRecordEnableResponse,
	}
)

type RecordEnable struct {
	Request  RecordEnableRequest
	Response RecordEnableResponse
}

func (s *RecordEnable) ReqMessage() ros.Message { return &s.Request }
func (s *RecordEnable) ResMessage() ros.Message { return &s.Response }

type _MsgRecordEnableRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgRecordEnableRequest) Text() string {
	return t.text
}

func (t *_MsgRecordEnableRequest) Name() string {
	return t.name
}

func (t *_MsgRecordEnableRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgRecordEnableRequest) NewMessage() ros.Message {
	m := new(RecordEnableRequest)
	m.Enable = false
	return m
}

var (
	MsgRecordEnableRequest = &_MsgRecordEnableRequest{
		`bool enable
`,
		"ardrone_autonomy/RecordEnableRequest",
		"8c1211af706069c994c06e00eb59ac9e",
	}
)

type RecordEnableRequest struct {
	Enable bool `rosmsg:"enable:bool"`
}

func (m *RecordEnableRequest) Type() ros.MessageType {
	return MsgRecordEnableRequest
}

func (m *RecordEnableRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Enable)
	return err
}

func (m *RecordEnableRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Enable); err != nil {
		return err
	}
	return err
}

type _MsgRecordEnableResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgRecordEnableResponse) Text() string {
	return t.text
}

func (t *_MsgRecordEnableResponse) Name() string {
	return t.name
}

func (t *_MsgRecordEnableResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgRecordEnableResponse) NewMessage() ros.Message {
	m := new(RecordEnableResponse)
	m.Result = false
	return m
}

var (
	MsgRecordEnableResponse = &_MsgRecordEnableResponse{
		`bool result
`,
		"ardrone_autonomy/RecordEnableResponse",
		"eb13ac1f1354ccecb7941ee8fa2192e8",
	}
)

type RecordEnableResponse struct {
	Result bool `rosmsg:"result:bool"`
}

func (m *RecordEnableResponse) Type() ros.MessageType {
	return MsgRecordEnableResponse
}

func (m *RecordEnableResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Result)
	return err
}

func (m *RecordEnableResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Result); err != nil {
		return err
	}
	return err
}

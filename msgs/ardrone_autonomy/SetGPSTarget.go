// Automatically generated from the service definition "ardrone_autonomy/SetGPSTarget.srv"
package ardrone_autonomy

import (
	"bytes"
	"encoding/binary"

	"ardrone/msgs/geographic_msgs"

	"github.com/akio/rosgo/ros"
)

// Service type metadata
type _SrvSetGPSTarget struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvSetGPSTarget) Name() string { return t.name }
func (t *_SrvSetGPSTarget) MD5Sum() string { return t.md5sum }
func (t *_SrvSetGPSTarget) Text() string { return t.text }
func (t *_SrvSetGPSTarget) RequestType() ros.MessageType { return t.reqType }
func (t *_SrvSetGPSTarget) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvSetGPSTarget) NewService() ros.Service {
	return new(SetGPSTarget)
}

var (
	SrvSetGPSTarget = &_SrvSetGPSTarget{
		"ardrone_autonomy/SetGPSTarget",
		"43f300bfc02e7fc549357dfe3a57f5ff",
		`geographic_msgs/WayPoint target
---
bool result
`,
		MsgSetGPSTargetRequest,
		MsgSetGPSTargetResponse,
	}
)

type SetGPSTarget struct {
	Request  SetGPSTargetRequest
	Response SetGPSTargetResponse
}

func (s *SetGPSTarget) ReqMessage() ros.Message { return &s.Request }
func (s *SetGPSTarget) ResMessage() ros.Message { return &s.Response }

type _MsgSetGPSTargetRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgSetGPSTargetRequest) Text() string {
	return t.text
}

func (t *_MsgSetGPSTargetRequest) Name() string {
	return t.name
}

func (t *_MsgSetGPSTargetRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgSetGPSTargetRequest) NewMessage() ros.Message {
	m := new(SetGPSTargetRequest)
	m.Target = geographic_msgs.WayPoint{}
	return m
}

var (
	MsgSetGPSTargetRequest = &_MsgSetGPSTargetRequest{
		`geographic_msgs/WayPoint target
`,
		"ardrone_autonomy/SetGPSTargetRequest",
		"2af69f1bc84f60860212be35f3360722",
	}
)

type SetGPSTargetRequest struct {
	Target geographic_msgs.WayPoint `rosmsg:"target:WayPoint"`
}

func (m *SetGPSTargetRequest) Type() ros.MessageType {
	return MsgSetGPSTargetRequest
}

func (m *SetGPSTargetRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Target.Serialize(buf); err != nil {
		return err
	}
	return err
}

func (m *SetGPSTargetRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Target.Deserialize(buf); err != nil {
		return err
	}
	return err
}

type _MsgSetGPSTargetResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgSetGPSTargetResponse) Text() string {
	return t.text
}

func (t *_MsgSetGPSTargetResponse) Name() string {
	return t.name
}

func (t *_MsgSetGPSTargetResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgSetGPSTargetResponse) NewMessage() ros.Message {
	m := new(SetGPSTargetResponse)
	m.Result = false
	return m
}

var (
	MsgSetGPSTargetResponse = &_MsgSetGPSTargetResponse{
		`bool result
`,
		"ardrone_autonomy/SetGPSTargetResponse",
		"eb13ac1f1354ccecb7941ee8fa2192e8",
	}
)

type SetGPSTargetResponse struct {
	Result bool `rosmsg:"result:bool"`
}

func (m *SetGPSTargetResponse) Type() ros.MessageType {
	return MsgSetGPSTargetResponse
}

func (m *SetGPSTargetResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Result)
	return err
}

func (m *SetGPSTargetResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Result); err != nil {
		return err
	}
	return err
}

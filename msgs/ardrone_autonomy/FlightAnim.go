// Automatically generated from the service definition "ardrone_autonomy/FlightAnim.srv"
package ardrone_autonomy

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

// Service type metadata
type _SrvFlightAnim struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvFlightAnim) Name() string { return t.name }
func (t *_SrvFlightAnim) MD5Sum() string { return t.md5sum }
func (t *_SrvFlightAnim) Text() string { return t.text }
func (t *_SrvFlightAnim) RequestType() ros.MessageType { return t.reqType }
func (t *_SrvFlightAnim) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvFlightAnim) NewService() ros.Service {
	return new(FlightAnim)
}

var (
	SrvFlightAnim = &_SrvFlightAnim{
		"ardrone_autonomy/FlightAnim",
		"b67c0059d7339761bcde13f61a58763f",
		`# 0 .. 19, see ARDRONE_ANIMATION_ID
uint8 type
# In milliseconds, 0 for the default duration
uint32 duration
---
bool result
`,
		MsgFlightAnimRequest,
		MsgFlightAnimResponse,
	}
)

type FlightAnim struct {
	Request  FlightAnimRequest
	Response FlightAnimResponse
}

func (s *FlightAnim) ReqMessage() ros.Message { return &s.Request }
func (s *FlightAnim) ResMessage() ros.Message { return &s.Response }

type _MsgFlightAnimRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFlightAnimRequest) Text() string {
	return t.text
}

func (t *_MsgFlightAnimRequest) Name() string {
	return t.name
}

func (t *_MsgFlightAnimRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFlightAnimRequest) NewMessage() ros.Message {
	m := new(FlightAnimRequest)
	m.AnimType = 0
	m.Duration = 0
	return m
}

var (
	MsgFlightAnimRequest = &_MsgFlightAnimRequest{
		`# 0 .. 19, see ARDRONE_ANIMATION_ID
uint8 type
# In milliseconds, 0 for the default duration
uint32 duration
`,
		"ardrone_autonomy/FlightAnimRequest",
		"1babbb93af7ae39105f8dba705eb91ac",
	}
)

type FlightAnimRequest struct {
	AnimType uint8  `rosmsg:"type:uint8"`
	Duration uint32 `rosmsg:"duration:uint32"`
}

func (m *FlightAnimRequest) Type() ros.MessageType {
	return MsgFlightAnimRequest
}

func (m *FlightAnimRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.AnimType)
	binary.Write(buf, binary.LittleEndian, m.Duration)
	return err
}

func (m *FlightAnimRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.AnimType); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Duration); err != nil {
		return err
	}
	return err
}

type _MsgFlightAnimResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgFlightAnimResponse) Text() string {
	return t.text
}

func (t *_MsgFlightAnimResponse) Name() string {
	return t.name
}

func (t *_MsgFlightAnimResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgFlightAnimResponse) NewMessage() ros.Message {
	m := new(FlightAnimResponse)
	m.Result = false
	return m
}

var (
	MsgFlightAnimResponse = &_MsgFlightAnimResponse{
		`bool result
`,
		"ardrone_autonomy/FlightAnimResponse",
		"eb13ac1f1354ccecb7941ee8fa2192e8",
	}
)

type FlightAnimResponse struct {
	Result bool `rosmsg:"result:bool"`
}

func (m *FlightAnimResponse) Type() ros.MessageType {
	return MsgFlightAnimResponse
}

func (m *FlightAnimResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Result)
	return err
}

func (m *FlightAnimResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Result); err != nil {
		return err
	}
	return err
}

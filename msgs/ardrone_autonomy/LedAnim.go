// Automatically generated from the service definition "ardrone_autonomy/LedAnim.srv"
package ardrone_autonomy

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

// Service type metadata
type _SrvLedAnim struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvLedAnim) Name() string { return t.name }
func (t *_SrvLedAnim) MD5Sum() string { return t.md5sum }
func (t *_SrvLedAnim) Text() string { return t.text }
func (t *_SrvLedAnim) RequestType() ros.MessageType { return t.reqType }
func (t *_SrvLedAnim) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvLedAnim) NewService() ros.Service {
	return new(LedAnim)
}

var (
	SrvLedAnim = &_SrvLedAnim{
		"ardrone_autonomy/LedAnim",
		"0447d1620f8ba70a5b1fc2d89e406549",
		`# 0 : BLINK_GREEN_RED
# 1 : BLINK_GREEN
# 2 : BLINK_RED
# 3 : BLINK_ORANGE
# 4 : SNAKE_GREEN_RED
# 5 : FIRE
# 6 : STANDARD
# 7 : RED
# 8 : GREEN
# 9 : RED_SNAKE
# 10: BLANK
# 11: LEFT_GREEN_RIGHT_RED
# 12: LEFT_RED_RIGHT_GREEN
# 13: BLINK_STANDARD
uint8 type
# In Hz
float32 freq
# In seconds
uint8 duration
---
bool result
`,
		MsgLedAnimRequest,
		MsgLedAnimResponse,
	}
)

type LedAnim struct {
	Request  LedAnimRequest
	Response LedAnimResponse
}

func (s *LedAnim) ReqMessage() ros.Message { return &s.Request }
func (s *LedAnim) ResMessage() ros.Message { return &s.Response }

type _MsgLedAnimRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgLedAnimRequest) Text() string {
	return t.text
}

func (t *_MsgLedAnimRequest) Name() string {
	return t.name
}

func (t *_MsgLedAnimRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgLedAnimRequest) NewMessage() ros.Message {
	m := new(LedAnimRequest)
	m.AnimType = 0
	m.Freq = 0.0
	m.Duration = 0
	return m
}

var (
	MsgLedAnimRequest = &_MsgLedAnimRequest{
		`# 0 : BLINK_GREEN_RED
# 1 : BLINK_GREEN
# 2 : BLINK_RED
# 3 : BLINK_ORANGE
# 4 : SNAKE_GREEN_RED
# 5 : FIRE
# 6 : STANDARD
# 7 : RED
# 8 : GREEN
# 9 : RED_SNAKE
# 10: BLANK
# 11: LEFT_GREEN_RIGHT_RED
# 12: LEFT_RED_RIGHT_GREEN
# 13: BLINK_STANDARD
uint8 type
# In Hz
float32 freq
# In seconds
uint8 duration
`,
		"ardrone_autonomy/LedAnimRequest",
		"23392fc8200b12a3585ff6a32d597821",
	}
)

type LedAnimRequest struct {
	AnimType uint8   `rosmsg:"type:uint8"`
	Freq     float32 `rosmsg:"freq:float32"`
	Duration uint8   `rosmsg:"duration:uint8"`
}

func (m *LedAnimRequest) Type() ros.MessageType {
	return MsgLedAnimRequest
}

func (m *LedAnimRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.AnimType)
	binary.Write(buf, binary.LittleEndian, m.Freq)
	binary.Write(buf, binary.LittleEndian, m.Duration)
	return err
}

func (m *LedAnimRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.AnimType); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Freq); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Duration); err != nil {
		return err
	}
	return err
}

type _MsgLedAnimResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgLedAnimResponse) Text() string {
	return t.text
}

func (t *_MsgLedAnimResponse) Name() string {
	return t.name
}

func (t *_MsgLedAnimResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgLedAnimResponse) NewMessage() ros.Message {
	m := new(LedAnimResponse)
	m.Result = false
	return m
}

var (
	MsgLedAnimResponse = &_MsgLedAnimResponse{
		`bool result
`,
		"ardrone_autonomy/LedAnimResponse",
		"eb13ac1f1354ccecb7941ee8fa2192e8",
	}
)

type LedAnimResponse struct {
	Result bool `rosmsg:"result:bool"`
}

func (m *LedAnimResponse) Type() ros.MessageType {
	return MsgLedAnimResponse
}

func (m *LedAnimResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Result)
	return err
}

func (m *LedAnimResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Result); err != nil {
		return err
	}
	return err
}

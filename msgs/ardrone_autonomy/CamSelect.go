// Automatically generated from the service definition "ardrone_autonomy/CamSelect.srv"
package ardrone_autonomy

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

// Service type metadata
type _SrvCamSelect struct {
	name    string
	md5sum  string
	text    string
	reqType ros.MessageType
	resType ros.MessageType
}

func (t *_SrvCamSelect) Name() string { return t.name }
func (t *_SrvCamSelect) MD5Sum() string { return t.md5sum }
func (t *_SrvCamSelect) Text() string { return t.text }
func (t *_SrvCamSelect) RequestType() ros.MessageType { return t.reqType }
func (t *_SrvCamSelect) ResponseType() ros.MessageType { return t.resType }
func (t *_SrvCamSelect) NewService() ros.Service {
	return new(CamSelect)
}

var (
	SrvCamSelect = &_SrvCamSelect{
		"ardrone_autonomy/CamSelect",
		"bbeb5212f8ee1d6da7ff0d1169124280",
		`# 0: forward camera, 1: vertical camera (AR.Drone 1 also 2, 3 picture in picture)
uint8 channel
---
bool result
`,
		MsgCamSelectRequest,
		MsgCamSelectResponse,
	}
)

type CamSelect struct {
	Request  CamSelectRequest
	Response CamSelectResponse
}

func (s *CamSelect) ReqMessage() ros.Message { return &s.Request }
func (s *CamSelect) ResMessage() ros.Message { return &s.Response }

type _MsgCamSelectRequest struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgCamSelectRequest) Text() string {
	return t.text
}

func (t *_MsgCamSelectRequest) Name() string {
	return t.name
}

func (t *_MsgCamSelectRequest) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgCamSelectRequest) NewMessage() ros.Message {
	m := new(CamSelectRequest)
	m.Channel = 0
	return m
}

var (
	MsgCamSelectRequest = &_MsgCamSelectRequest{
		`# 0: forward camera, 1: vertical camera (AR.Drone 1 also 2, 3 picture in picture)
uint8 channel
`,
		"ardrone_autonomy/CamSelectRequest",
		"c27320df100593b008f1bb2e1302dbb6",
	}
)

type CamSelectRequest struct {
	Channel uint8 `rosmsg:"channel:uint8"`
}

func (m *CamSelectRequest) Type() ros.MessageType {
	return MsgCamSelectRequest
}

func (m *CamSelectRequest) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Channel)
	return err
}

func (m *CamSelectRequest) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Channel); err != nil {
		return err
	}
	return err
}

type _MsgCamSelectResponse struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgCamSelectResponse) Text() string {
	return t.text
}

func (t *_MsgCamSelectResponse) Name() string {
	return t.name
}

func (t *_MsgCamSelectResponse) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgCamSelectResponse) NewMessage() ros.Message {
	m := new(CamSelectResponse)
	m.Result = false
	return m
}

var (
	MsgCamSelectResponse = &_MsgCamSelectResponse{
		`bool result
`,
		"ardrone_autonomy/CamSelectResponse",
		"eb13ac1f1354ccecb7941ee8fa2192e8",
	}
)

type CamSelectResponse struct {
	Result bool `rosmsg:"result:bool"`
}

func (m *CamSelectResponse) Type() ros.MessageType {
	return MsgCamSelectResponse
}

func (m *CamSelectResponse) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Result)
	return err
}

func (m *CamSelectResponse) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Result); err != nil {
		return err
	}
	return err
}

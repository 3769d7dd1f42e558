// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus_test

import (
	"testing"

	fb "github.com/arcwire/framebus"
)

func TestSend_MasterSetsPeerBit(t *testing.T) {
	var gotID uint64
	server, err := fb.NewEndpoint(fb.Slave, noopSink)
	if err != nil {
		t.Fatalf("construct server: %v", err)
	}
	if err := server.AddGenericListener(func(msg *fb.Message) fb.Result {
		gotID = msg.FrameID
		return fb.Consumed
	}); err != nil {
		t.Fatalf("add listener: %v", err)
	}
	client, err := fb.NewEndpoint(fb.Master, func(frame []byte) { server.Accept(frame) })
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	if err := client.Send(fb.Message{Type: 1}, nil, nil, 0); err != nil {
		t.Fatalf("send: %v", err)
	}
	// Default IDBytes is 1, so the peer bit is bit 7 (0x80).
	if gotID&0x80 == 0 {
		t.Fatalf("frame id %#x: want peer bit set", gotID)
	}
}

func TestSend_SlaveClearsPeerBit(t *testing.T) {
	var gotID uint64
	server, err := fb.NewEndpoint(fb.Master, noopSink)
	if err != nil {
		t.Fatalf("construct server: %v", err)
	}
	if err := server.AddGenericListener(func(msg *fb.Message) fb.Result {
		gotID = msg.FrameID
		return fb.Consumed
	}); err != nil {
		t.Fatalf("add listener: %v", err)
	}
	client, err := fb.NewEndpoint(fb.Slave, func(frame []byte) { server.Accept(frame) })
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	if err := client.Send(fb.Message{Type: 1}, nil, nil, 0); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotID&0x80 != 0 {
		t.Fatalf("frame id %#x: want peer bit clear", gotID)
	}
}

func TestSend_CounterNeverWrapsToZero(t *testing.T) {
	var ids []uint64
	server, err := fb.NewEndpoint(fb.Slave, noopSink)
	if err != nil {
		t.Fatalf("construct server: %v", err)
	}
	if err := server.AddGenericListener(func(msg *fb.Message) fb.Result {
		ids = append(ids, msg.FrameID&0x7F)
		return fb.Consumed
	}); err != nil {
		t.Fatalf("add listener: %v", err)
	}
	client, err := fb.NewEndpoint(fb.Master, func(frame []byte) { server.Accept(frame) })
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	// Default IDBytes=1 gives a 7-bit counter space (0x7F max); send enough
	// frames to wrap around at least twice.
	for i := 0; i < 300; i++ {
		if err := client.Send(fb.Message{Type: 1}, nil, nil, 0); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	for i, id := range ids {
		if id == 0 {
			t.Fatalf("id at index %d is 0, counter must never wrap to 0", i)
		}
	}
}

func TestRespond_PreservesFrameIDAndPeerBit(t *testing.T) {
	var client, server *fb.Endpoint
	var respID uint64

	server, err := fb.NewEndpoint(fb.Slave, func(frame []byte) { client.Accept(frame) })
	if err != nil {
		t.Fatalf("construct server: %v", err)
	}
	client, err = fb.NewEndpoint(fb.Master, func(frame []byte) { server.Accept(frame) })
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}

	if err := server.AddGenericListener(func(msg *fb.Message) fb.Result {
		if err := server.Respond(fb.Message{FrameID: msg.FrameID, Type: msg.Type, Payload: msg.Payload}, false); err != nil {
			t.Fatalf("respond: %v", err)
		}
		return fb.Consumed
	}); err != nil {
		t.Fatalf("add listener: %v", err)
	}

	if err := client.Send(fb.Message{Type: 5, Payload: []byte("hi")}, func(msg *fb.Message) fb.Result {
		respID = msg.FrameID
		return fb.Consumed
	}, nil, 0); err != nil {
		t.Fatalf("send: %v", err)
	}

	if respID&0x80 == 0 {
		t.Fatalf("response frame id %#x: want peer bit (master's) preserved", respID)
	}
}

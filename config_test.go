// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus_test

import (
	"errors"
	"testing"

	fb "github.com/arcwire/framebus"
)

func noopSink(frame []byte) {}

func TestNewEndpoint_DefaultsAreValid(t *testing.T) {
	e, err := fb.NewEndpoint(fb.Master, noopSink)
	if err != nil {
		t.Fatalf("err=%v want nil", err)
	}
	if e == nil {
		t.Fatalf("want non-nil endpoint")
	}
}

func TestNewEndpoint_InvalidWidth_ReturnsInvalidArgument(t *testing.T) {
	_, err := fb.NewEndpoint(fb.Master, noopSink, fb.WithIDBytes(3))
	if !errors.Is(err, fb.ErrInvalidArgument) {
		t.Fatalf("err=%v want ErrInvalidArgument", err)
	}
}

func TestNewEndpoint_ZeroCapacity_ReturnsInvalidArgument(t *testing.T) {
	_, err := fb.NewEndpoint(fb.Master, noopSink, fb.WithIDCap(0))
	if !errors.Is(err, fb.ErrInvalidArgument) {
		t.Fatalf("err=%v want ErrInvalidArgument", err)
	}
}

func TestNewEndpoint_MaxPayloadExceedsLenField_ReturnsInvalidArgument(t *testing.T) {
	_, err := fb.NewEndpoint(fb.Master, noopSink, fb.WithLenBytes(fb.Width1), fb.WithMaxPayloadRX(300))
	if !errors.Is(err, fb.ErrInvalidArgument) {
		t.Fatalf("err=%v want ErrInvalidArgument", err)
	}
}

func TestNewEndpoint_MaxPayloadAtLenFieldLimit_IsValid(t *testing.T) {
	_, err := fb.NewEndpoint(fb.Master, noopSink, fb.WithLenBytes(fb.Width1), fb.WithMaxPayloadRX(255), fb.WithMaxPayloadTX(255))
	if err != nil {
		t.Fatalf("err=%v want nil", err)
	}
}

func TestWithoutSOF_DisablesSentinel(t *testing.T) {
	var got *fb.Message
	server, err := fb.NewEndpoint(fb.Slave, noopSink, fb.WithoutSOF())
	if err != nil {
		t.Fatalf("construct server: %v", err)
	}
	if err := server.AddGenericListener(func(msg *fb.Message) fb.Result {
		got = msg
		return fb.Consumed
	}); err != nil {
		t.Fatalf("add listener: %v", err)
	}
	var sent []byte
	client, err := fb.NewEndpoint(fb.Master, func(frame []byte) {
		sent = append([]byte(nil), frame...)
		server.Accept(frame)
	}, fb.WithoutSOF())
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	if err := client.Send(fb.Message{Type: 1, Payload: []byte("x")}, nil, nil, 0); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got == nil {
		t.Fatalf("want delivered message")
	}
	// Without SOF the frame opens directly with the 1-byte ID (0x81 for a
	// fresh Master), not the 0x01 sentinel.
	if len(sent) == 0 || sent[0] != 0x81 {
		t.Fatalf("frame=% x want it to start with ID 0x81, no SOF", sent)
	}
}

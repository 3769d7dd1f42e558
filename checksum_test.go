// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus_test

import (
	"testing"

	fb "github.com/arcwire/framebus"
)

// These round-trip tests pin the checksum behavior indirectly through the
// public Send/Accept surface, since checksum() itself is unexported: a
// corrupted frame must never be dispatched, and an uncorrupted one always is.

func TestChecksum_CRC16_ValidFrameDispatches(t *testing.T) {
	mustRoundTrip(t, fb.ChecksumCRC16, false)
}

func TestChecksum_CRC32_ValidFrameDispatches(t *testing.T) {
	mustRoundTrip(t, fb.ChecksumCRC32, false)
}

func TestChecksum_XOR8_ValidFrameDispatches(t *testing.T) {
	mustRoundTrip(t, fb.ChecksumXOR8, false)
}

func TestChecksum_None_ValidFrameDispatches(t *testing.T) {
	mustRoundTrip(t, fb.ChecksumNone, false)
}

func TestChecksum_CRC16_CorruptedFrameIsDropped(t *testing.T) {
	mustRoundTrip(t, fb.ChecksumCRC16, true)
}

func TestChecksum_CRC32_CorruptedFrameIsDropped(t *testing.T) {
	mustRoundTrip(t, fb.ChecksumCRC32, true)
}

func mustRoundTrip(t *testing.T, kind fb.ChecksumKind, corrupt bool) {
	t.Helper()

	var server *fb.Endpoint
	var got *fb.Message

	sink := func(frame []byte) {
		if corrupt && len(frame) > 0 {
			frame[len(frame)/2] ^= 0xFF
		}
		server.Accept(frame)
	}

	var err error
	server, err = fb.NewEndpoint(fb.Slave, noopSink, fb.WithChecksum(kind))
	if err != nil {
		t.Fatalf("construct server: %v", err)
	}
	if err := server.AddGenericListener(func(msg *fb.Message) fb.Result {
		got = msg
		return fb.Consumed
	}); err != nil {
		t.Fatalf("add listener: %v", err)
	}

	client, err := fb.NewEndpoint(fb.Master, sink, fb.WithChecksum(kind))
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}
	if err := client.Send(fb.Message{Type: 7, Payload: []byte("payload")}, nil, nil, 0); err != nil {
		t.Fatalf("send: %v", err)
	}

	if corrupt {
		if got != nil {
			t.Fatalf("want corrupted frame dropped, got delivered %+v", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("want frame delivered")
	}
	if string(got.Payload) != "payload" {
		t.Fatalf("payload=%q want %q", got.Payload, "payload")
	}
}

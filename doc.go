// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package framebus implements a compact, peer-to-peer binary framing protocol
// for reliable message exchange over a byte-oriented transport such as a UART.
//
// Design and semantics:
//   - The package owns only the framing codec and the receive-side state
//     machine. It never opens a transport: outbound bytes go to a host-supplied
//     Sink, and inbound bytes are pushed in by the host via Accept/AcceptChar.
//     There is no clock; timeouts advance only when the host calls Tick.
//   - An Endpoint is single-threaded and cooperative: every exported method must
//     be serialized by the caller. Callbacks run synchronously from whichever
//     goroutine called Accept/AcceptChar/Tick, and may safely re-enter the
//     Endpoint (e.g. call Send from inside a listener).
//   - All listener tables are fixed-capacity, sized at construction. There is no
//     dynamic growth and no heap churn once an Endpoint is built.
//
// Wire format: a frame is laid out as
//
//	[ SOF? | ID | LEN | TYPE | HEAD_CKSUM? | payload[LEN] | PAYLOAD_CKSUM? ]
//
// with all multi-byte integers big-endian. ID, LEN, and TYPE each have a
// construction-time width of 1, 2, or 4 bytes. The most significant bit of ID is
// reserved as the peer bit and is never part of the numeric identifier space.
// SOF and the two checksum fields are each present or absent depending on the
// Endpoint's Config; both ends of a link must agree on every wire-affecting
// option. See Config and the With* Option constructors.
package framebus

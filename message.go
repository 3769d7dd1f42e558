// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

// Peer selects which end of a link an Endpoint represents. The peer bit of
// every identifier an Endpoint originates is set for Master and clear for
// Slave; Respond always preserves the peer bit of the frame it answers.
type Peer uint8

const (
	Slave Peer = iota
	Master
)

// Result is a listener callback's verdict on a delivered Message.
type Result uint8

const (
	// Ignored lets dispatch continue to the next candidate listener (only
	// meaningful for generic listeners; by-ID and by-type listeners are the
	// sole match for their key regardless of the result they return).
	Ignored Result = iota
	// Consumed ends dispatch and, for a by-ID listener, removes the slot.
	Consumed
)

// Message is the in-memory representation of one logical frame, either
// received from the decoder or supplied to Send/Respond.
type Message struct {
	// FrameID is the wire identifier. On Send it is assigned automatically
	// unless IsResponse is set; on Respond it is read and reused verbatim.
	FrameID uint64
	// Type is the application-defined message type.
	Type uint64
	// Payload is a borrowed, read-only byte span. On delivery it aliases the
	// Endpoint's internal receive buffer and is only valid for the duration
	// of the callback.
	Payload []byte
	// IsResponse, when set on Send, reuses FrameID instead of allocating one.
	IsResponse bool
	// Userdata is opaque to the core; it is only ever carried back to the
	// listener it was registered with.
	Userdata any
}

// Callback is invoked synchronously when a Message is dispatched to a
// listener, or when a by-ID listener's timeout expires (in which case msg.
// Payload is nil and msg.Type is zero).
type Callback func(msg *Message) Result

// Sink is the host-supplied transport write function. It is called with one
// complete, ready-to-transmit frame at a time and is assumed synchronous and
// infallible from the Endpoint's perspective.
type Sink func(frame []byte)

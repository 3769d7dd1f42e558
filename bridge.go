// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

// Bridge pairs two Endpoints so that any frame dispatched to a generic
// listener on one is relayed onward as a new Send on the other. It adds no
// wire concept of its own — it is built entirely from AddGenericListener and
// Send — and is meant for repeater/gateway scenarios: joining two physical
// links, or splicing a test harness between a real link and application code.
//
// A relayed frame is always sent as a fresh, non-response message: Bridge does
// not preserve FrameID across the hop, since the two sides may even use
// different ID widths. Applications that need end-to-end request/response
// semantics across a Bridge should carry a correlation id inside Payload.
type Bridge struct {
	a, b *Endpoint
}

// NewBridge constructs a Bridge relaying dispatched frames between a and b in
// both directions. It registers one generic listener on each Endpoint; callers
// should not also rely on a's or b's generic fallback table being exhausted by
// other listeners in most cases, since the bridge's own listener is one more
// entry in that table.
func NewBridge(a, b *Endpoint) (*Bridge, error) {
	br := &Bridge{a: a, b: b}
	if err := a.AddGenericListener(br.relay(b)); err != nil {
		return nil, err
	}
	if err := b.AddGenericListener(br.relay(a)); err != nil {
		_ = a.RemoveGenericListener(br.relay(b))
		return nil, err
	}
	return br, nil
}

// relay returns a generic-listener callback that re-sends any delivered
// message's Type and Payload on dst as a fresh Send (a new FrameID is
// allocated there), and always returns Ignored so other generic
// listeners on the source Endpoint still see the frame.
func (br *Bridge) relay(dst *Endpoint) Callback {
	return func(msg *Message) Result {
		_ = dst.Send(Message{Type: msg.Type, Payload: msg.Payload}, nil, nil, 0)
		return Ignored
	}
}

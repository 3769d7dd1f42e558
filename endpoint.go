// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

// Endpoint is one side of a framed link: the codec configuration, the
// identifier counter, the three listener tables, and the decoder's parser
// state all live in one value. An Endpoint is single-threaded and
// cooperative — every exported method must be serialized by the caller.
type Endpoint struct {
	cfg  Config
	sink Sink
	peer Peer

	counter uint64

	idTable   []idSlot
	typeTable []typeSlot
	genTable  []genSlot

	dec decoder

	// txBuf is a reusable per-Endpoint scratch buffer for Send/Respond. Single-
	// threaded use only, per the package's concurrency contract.
	txBuf []byte
}

// NewEndpoint constructs an Endpoint for the given Peer role, writing frames to
// sink as they're emitted. Both ends of a link must be built with the same
// wire-affecting Options.
func NewEndpoint(peer Peer, sink Sink, opts ...Option) (*Endpoint, error) {
	cfg := defaultConfig
	for _, fn := range opts {
		fn(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Endpoint{cfg: cfg, sink: sink}
	e.Init(peer)
	return e, nil
}

// Init resets the Endpoint to a clean state: it clears all three listener
// tables and the parser state, and fixes the peer bit used for subsequently
// allocated identifiers.
func (e *Endpoint) Init(peer Peer) {
	e.peer = peer
	e.counter = 0

	e.idTable = make([]idSlot, e.cfg.IDCap)
	e.typeTable = make([]typeSlot, e.cfg.TypeCap)
	e.genTable = make([]genSlot, e.cfg.GenCap)

	e.dec = newDecoder(&e.cfg)

	// Capacity covers the worst case: header, both checksums (head and
	// payload), and a maximum-size payload, so encodeFrame's direct re-slices
	// never need to grow the backing array.
	e.txBuf = make([]byte, 0, e.cfg.headerLen()+2*e.cfg.Checksum.width()+e.cfg.MaxPayloadTX)
}

// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

// decPhase is one step of the receive-side state machine. Unlike the wire
// diagram's per-field states (ID/LEN/TYPE), the header fields are accumulated
// into one scratch buffer and parsed together once complete — the header
// checksum covers all of them as a single contiguous span anyway.
type decPhase uint8

const (
	phaseSOF decPhase = iota
	phaseHeader
	phaseHeadCksum
	phasePayload
	phasePayloadCksum
)

// decoder holds the parser's mutable state for one Endpoint. It never
// allocates once constructed: the header and payload scratch buffers are
// sized once from Config.
type decoder struct {
	cfg *Config

	phase decPhase

	header    []byte // scratch for SOF?+ID+LEN+TYPE, length == cfg.headerLen()
	headerGot int

	cksumBuf []byte // scratch for the incoming checksum bytes, length == cfg.Checksum.width()
	cksumGot int

	id     uint64
	length uint64
	typ    uint64

	payload    []byte // capacity cfg.MaxPayloadRX, sliced to length while filling
	payloadGot int

	timeoutRemaining uint32
}

func newDecoder(cfg *Config) decoder {
	d := decoder{
		cfg:      cfg,
		header:   make([]byte, cfg.headerLen()),
		cksumBuf: make([]byte, cfg.Checksum.width()),
		payload:  make([]byte, cfg.MaxPayloadRX),
	}
	d.resetPhase()
	return d
}

// resetPhase returns the parser to its initial, idle phase without touching
// listener tables. Called on construction, on successful dispatch, on parse
// error, and on parser timeout.
func (d *decoder) resetPhase() {
	d.headerGot = 0
	d.cksumGot = 0
	d.payloadGot = 0
	d.timeoutRemaining = 0
	if d.cfg.UseSOF {
		d.phase = phaseSOF
	} else {
		d.phase = phaseHeader
	}
}

// arm (re)arms the parser timeout; called on every byte that advances the
// parser while it is not idle, per DESIGN.md's resolution of the spec's
// under-specified re-arm granularity.
func (d *decoder) arm() {
	d.timeoutRemaining = d.cfg.ParserTimeoutTicks
}

// ResetParser drops any partially-received frame but leaves every listener
// table untouched.
func (e *Endpoint) ResetParser() { e.dec.resetPhase() }

// Accept feeds a run of inbound bytes to the decoder, in order.
func (e *Endpoint) Accept(data []byte) {
	for _, b := range data {
		e.AcceptChar(b)
	}
}

// AcceptChar feeds one inbound byte to the decoder. Completed, checksum-
// verified frames are dispatched synchronously before this call returns;
// corrupted or timed-out partial frames are discarded silently, per the
// package's ParseIntegrity/ParseTimeout propagation policy.
func (e *Endpoint) AcceptChar(b byte) {
	d := &e.dec
	cfg := &e.cfg

	switch d.phase {
	case phaseSOF:
		if b != cfg.SOFByte {
			return
		}
		d.header[0] = b
		d.headerGot = 1
		d.phase = phaseHeader
		d.arm()

	case phaseHeader:
		d.header[d.headerGot] = b
		d.headerGot++
		d.arm()
		if d.headerGot < len(d.header) {
			return
		}
		e.onHeaderComplete()

	case phaseHeadCksum:
		d.cksumBuf[d.cksumGot] = b
		d.cksumGot++
		d.arm()
		if d.cksumGot < len(d.cksumBuf) {
			return
		}
		want := getUint(d.cksumBuf, cfg.Checksum.wireWidth())
		got := checksum(cfg.Checksum, d.header)
		if want != got {
			e.ResetParser()
			return
		}
		e.afterHeaderVerified()

	case phasePayload:
		d.payload[d.payloadGot] = b
		d.payloadGot++
		d.arm()
		if uint64(d.payloadGot) < d.length {
			return
		}
		e.afterPayloadComplete()

	case phasePayloadCksum:
		d.cksumBuf[d.cksumGot] = b
		d.cksumGot++
		d.arm()
		if d.cksumGot < len(d.cksumBuf) {
			return
		}
		want := getUint(d.cksumBuf, cfg.Checksum.wireWidth())
		got := checksum(cfg.Checksum, d.payload[:d.length])
		if want != got {
			e.ResetParser()
			return
		}
		e.finishFrame()
	}
}

// onHeaderComplete parses ID/LEN/TYPE out of the header scratch buffer once
// every header byte has arrived, and decides the next phase.
func (e *Endpoint) onHeaderComplete() {
	d := &e.dec
	cfg := &e.cfg

	off := 0
	if cfg.UseSOF {
		off = 1
	}
	d.id = getUint(d.header[off:off+int(cfg.IDBytes)], cfg.IDBytes)
	off += int(cfg.IDBytes)
	d.length = getUint(d.header[off:off+int(cfg.LenBytes)], cfg.LenBytes)
	off += int(cfg.LenBytes)
	d.typ = getUint(d.header[off:off+int(cfg.TypeBytes)], cfg.TypeBytes)

	// An implausible LEN is a parse error, resolved before any payload byte
	// is consumed (spec §4.4).
	if d.length > uint64(cfg.MaxPayloadRX) {
		e.ResetParser()
		return
	}

	if cfg.Checksum != ChecksumNone {
		d.cksumGot = 0
		d.phase = phaseHeadCksum
		return
	}
	e.afterHeaderVerified()
}

// afterHeaderVerified runs once the header is known-good (either no checksum
// is configured, or the header checksum matched).
func (e *Endpoint) afterHeaderVerified() {
	d := &e.dec
	if d.length > 0 {
		d.payloadGot = 0
		d.phase = phasePayload
		return
	}
	e.finishFrame()
}

// afterPayloadComplete runs once every payload byte has arrived.
func (e *Endpoint) afterPayloadComplete() {
	d := &e.dec
	if e.cfg.Checksum != ChecksumNone {
		d.cksumGot = 0
		d.phase = phasePayloadCksum
		return
	}
	e.finishFrame()
}

// finishFrame dispatches the completed frame and returns the parser to idle.
func (e *Endpoint) finishFrame() {
	d := &e.dec
	msg := Message{
		FrameID: d.id,
		Type:    d.typ,
		Payload: d.payload[:d.length],
	}
	e.ResetParser()
	e.dispatch(&msg)
}

// tickParser advances the parser timeout by one tick, discarding any partial
// frame if it reaches zero. Part of Tick.
func (e *Endpoint) tickParser() {
	d := &e.dec
	if d.timeoutRemaining == 0 {
		return
	}
	d.timeoutRemaining--
	if d.timeoutRemaining == 0 {
		e.ResetParser()
	}
}

// Tick advances the parser timeout and sweeps by-ID listener timeouts by one
// tick each. The host calls this on a regular cadence; the unit is whatever
// the host chooses, and every timeout in the package is expressed in it.
func (e *Endpoint) Tick() {
	e.tickParser()
	e.sweepIDTimeouts()
}

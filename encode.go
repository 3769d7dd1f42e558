// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

// Send serializes msg and pushes it to the Sink. If msg.IsResponse is false, a
// fresh FrameID is allocated (with this Endpoint's peer bit applied) and used
// for the frame and for the listener; msg is passed by value, so the caller's
// Message keeps its original FrameID. If listener is non-nil, a by-ID slot is
// registered for the chosen FrameID before the frame is emitted; if that
// registration fails the frame is never sent.
//
// Send fails with ErrCapacity if msg.Payload exceeds MaxPayloadTX, or with
// ErrTableFull if listener is non-nil and no by-ID slot is available. Neither
// failure leaves any state behind.
func (e *Endpoint) Send(msg Message, listener Callback, userdata any, timeout uint32) error {
	return e.send(&msg, listener, userdata, timeout)
}

// Respond is Send with IsResponse forced true: it reuses msg.FrameID verbatim
// (peer bit included) instead of allocating one, so the responder's own
// counter is never burned. If renew is true and a by-ID listener is waiting on
// this FrameID, its timeout is reset to its original budget.
func (e *Endpoint) Respond(msg Message, renew bool) error {
	msg.IsResponse = true
	if err := e.send(&msg, nil, nil, 0); err != nil {
		return err
	}
	if renew {
		_ = e.RenewIdListener(msg.FrameID)
	}
	return nil
}

func (e *Endpoint) send(msg *Message, listener Callback, userdata any, timeout uint32) error {
	cfg := &e.cfg

	if len(msg.Payload) > cfg.MaxPayloadTX {
		return ErrCapacity
	}

	prevCounter := e.counter
	if !msg.IsResponse {
		msg.FrameID = e.nextID()
	}

	if listener != nil {
		if err := e.AddIdListener(msg.FrameID, listener, userdata, timeout); err != nil {
			e.counter = prevCounter
			return err
		}
	}

	frame := e.encodeFrame(msg)
	e.sink(frame)
	return nil
}

// encodeFrame serializes msg into the Endpoint's reusable transmit buffer and
// returns the slice to send. The buffer is only valid until the next Send or
// Respond call.
func (e *Endpoint) encodeFrame(msg *Message) []byte {
	cfg := &e.cfg
	buf := e.txBuf[:0]

	if cfg.UseSOF {
		buf = append(buf, cfg.SOFByte)
	}

	idStart := len(buf)
	buf = buf[:idStart+int(cfg.IDBytes)]
	putUint(buf[idStart:], cfg.IDBytes, msg.FrameID)

	lenStart := len(buf)
	buf = buf[:lenStart+int(cfg.LenBytes)]
	putUint(buf[lenStart:], cfg.LenBytes, uint64(len(msg.Payload)))

	typeStart := len(buf)
	buf = buf[:typeStart+int(cfg.TypeBytes)]
	putUint(buf[typeStart:], cfg.TypeBytes, msg.Type)

	if cfg.Checksum != ChecksumNone {
		// buf currently spans exactly SOF?+ID+LEN+TYPE: the full header span.
		headCksum := checksum(cfg.Checksum, buf)
		cksumStart := len(buf)
		buf = buf[:cksumStart+cfg.Checksum.width()]
		putUint(buf[cksumStart:], cfg.Checksum.wireWidth(), headCksum)
	}

	buf = append(buf, msg.Payload...)

	if cfg.Checksum != ChecksumNone && len(msg.Payload) > 0 {
		paylCksum := checksum(cfg.Checksum, msg.Payload)
		cksumStart := len(buf)
		buf = buf[:cksumStart+cfg.Checksum.width()]
		putUint(buf[cksumStart:], cfg.Checksum.wireWidth(), paylCksum)
	}

	e.txBuf = buf
	return buf
}


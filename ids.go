// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

// nextID allocates the next outgoing frame identifier: the low bits cycle
// 1..idMask (never 0, which stays reserved for "unset"), and the peer bit is
// set to match this Endpoint's configured Peer.
func (e *Endpoint) nextID() uint64 {
	mask := e.cfg.idMask()
	e.counter = (e.counter % mask) + 1
	id := e.counter
	if e.peer == Master {
		id |= e.cfg.idPeerBit()
	}
	return id
}

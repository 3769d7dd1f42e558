// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

import "reflect"

type idSlot struct {
	used             bool
	id               uint64
	cb               Callback
	userdata         any
	timeoutInitial   uint32
	timeoutRemaining uint32
}

type typeSlot struct {
	used bool
	typ  uint64
	cb   Callback
}

type genSlot struct {
	used bool
	cb   Callback
}

// AddIdListener registers cb to receive the one frame whose FrameID equals id,
// or a single empty-payload timeout notification after timeout ticks (0 means
// never expire). It fails with ErrTableFull if id is already registered or no
// free slot remains.
func (e *Endpoint) AddIdListener(id uint64, cb Callback, userdata any, timeout uint32) error {
	free := -1
	for i := range e.idTable {
		s := &e.idTable[i]
		if s.used && s.id == id {
			return ErrTableFull
		}
		if !s.used && free < 0 {
			free = i
		}
	}
	if free < 0 {
		return ErrTableFull
	}
	e.idTable[free] = idSlot{
		used:             true,
		id:               id,
		cb:               cb,
		userdata:         userdata,
		timeoutInitial:   timeout,
		timeoutRemaining: timeout,
	}
	return nil
}

// RemoveIdListener unregisters the by-ID listener for id.
func (e *Endpoint) RemoveIdListener(id uint64) error {
	for i := range e.idTable {
		s := &e.idTable[i]
		if s.used && s.id == id {
			*s = idSlot{}
			return nil
		}
	}
	return ErrNotFound
}

// RenewIdListener resets the by-ID listener for id back to its original timeout budget.
func (e *Endpoint) RenewIdListener(id uint64) error {
	for i := range e.idTable {
		s := &e.idTable[i]
		if s.used && s.id == id {
			s.timeoutRemaining = s.timeoutInitial
			return nil
		}
	}
	return ErrNotFound
}

// AddTypeListener registers cb for every frame whose Type equals typ. It fails
// with ErrTableFull if typ is already registered or no free slot remains.
func (e *Endpoint) AddTypeListener(typ uint64, cb Callback) error {
	free := -1
	for i := range e.typeTable {
		s := &e.typeTable[i]
		if s.used && s.typ == typ {
			return ErrTableFull
		}
		if !s.used && free < 0 {
			free = i
		}
	}
	if free < 0 {
		return ErrTableFull
	}
	e.typeTable[free] = typeSlot{used: true, typ: typ, cb: cb}
	return nil
}

// RemoveTypeListener unregisters the by-type listener for typ.
func (e *Endpoint) RemoveTypeListener(typ uint64) error {
	for i := range e.typeTable {
		s := &e.typeTable[i]
		if s.used && s.typ == typ {
			*s = typeSlot{}
			return nil
		}
	}
	return ErrNotFound
}

// AddGenericListener registers cb as a fallback for frames no by-ID or
// by-type listener claims.
func (e *Endpoint) AddGenericListener(cb Callback) error {
	for i := range e.genTable {
		s := &e.genTable[i]
		if !s.used {
			*s = genSlot{used: true, cb: cb}
			return nil
		}
	}
	return ErrTableFull
}

// RemoveGenericListener unregisters a previously-added generic listener,
// identified by its underlying function pointer (reflect.ValueOf(cb).Pointer()).
// This correctly distinguishes distinct top-level functions and method values;
// it cannot distinguish two closures that happen to share the same code.
func (e *Endpoint) RemoveGenericListener(cb Callback) error {
	target := reflect.ValueOf(cb).Pointer()
	for i := range e.genTable {
		s := &e.genTable[i]
		if s.used && reflect.ValueOf(s.cb).Pointer() == target {
			*s = genSlot{}
			return nil
		}
	}
	return ErrNotFound
}

// dispatch routes one completed, checksum-verified frame in priority order:
// by-ID, then by-type, then generic fallback. A by-ID or by-type match is the
// only listener invoked; generic listeners are invoked in turn until one
// returns Consumed.
// The slot index is captured before invoking the callback, so a callback that
// removes its own slot (safe) or adds a new one (lands in a different slot)
// cannot corrupt this scan.
func (e *Endpoint) dispatch(msg *Message) {
	for i := range e.idTable {
		s := &e.idTable[i]
		if !s.used || s.id != msg.FrameID {
			continue
		}
		msg.Userdata = s.userdata
		result := s.cb(msg)
		if result == Consumed {
			*s = idSlot{}
		} else if s.timeoutInitial > 0 {
			s.timeoutRemaining = s.timeoutInitial
		}
		return
	}

	for i := range e.typeTable {
		s := &e.typeTable[i]
		if !s.used || s.typ != msg.Type {
			continue
		}
		msg.Userdata = nil
		s.cb(msg)
		return
	}

	for i := range e.genTable {
		s := &e.genTable[i]
		if !s.used {
			continue
		}
		msg.Userdata = nil
		if s.cb(msg) == Consumed {
			return
		}
	}
}

// sweepIDTimeouts advances every live by-ID listener's timeout by one tick,
// firing a single empty-payload notification and clearing the slot when it
// expires. Called once per Tick.
func (e *Endpoint) sweepIDTimeouts() {
	for i := range e.idTable {
		s := &e.idTable[i]
		if !s.used || s.timeoutInitial == 0 {
			continue
		}
		s.timeoutRemaining--
		if s.timeoutRemaining != 0 {
			continue
		}
		cb, id, userdata := s.cb, s.id, s.userdata
		*s = idSlot{}
		cb(&Message{FrameID: id, Type: 0, Payload: nil, Userdata: userdata})
	}
}

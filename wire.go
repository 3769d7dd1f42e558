// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

import "encoding/binary"

// putUint writes v into buf (which must be exactly w bytes long) big-endian.
func putUint(buf []byte, w Width, v uint64) {
	switch w {
	case Width1:
		buf[0] = byte(v)
	case Width2:
		binary.BigEndian.PutUint16(buf, uint16(v))
	case Width4:
		binary.BigEndian.PutUint32(buf, uint32(v))
	}
}

// getUint reads a w-byte big-endian unsigned integer from buf.
func getUint(buf []byte, w Width) uint64 {
	switch w {
	case Width1:
		return uint64(buf[0])
	case Width2:
		return uint64(binary.BigEndian.Uint16(buf))
	case Width4:
		return uint64(binary.BigEndian.Uint32(buf))
	default:
		return 0
	}
}

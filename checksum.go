// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

import (
	"github.com/klauspost/compress/crc32"
	"github.com/sigurn/crc16"
)

// crc16Table is built once per process; MakeTable does a bit of work building
// the lookup table and every Endpoint using CRC-16 shares the same parameters.
var crc16Table = crc16.MakeTable(crc16.CRC16_MODBUS)

// checksum computes the configured checksum over data. The seed for XOR8 is
// always 0; CRC-16 uses the MODBUS parameterization (poly 0x8005, reflected,
// init 0xFFFF, no final XOR); CRC-32 uses the IEEE/Ethernet parameterization
// (poly 0xEDB88320, reflected, init/xorout 0xFFFFFFFF).
func checksum(kind ChecksumKind, data []byte) uint64 {
	switch kind {
	case ChecksumXOR8:
		var x byte
		for _, b := range data {
			x ^= b
		}
		return uint64(^x)
	case ChecksumCRC16:
		return uint64(crc16.Checksum(data, crc16Table))
	case ChecksumCRC32:
		return uint64(crc32.ChecksumIEEE(data))
	default:
		return 0
	}
}

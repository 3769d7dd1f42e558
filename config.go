// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framebus

// Width is a field width in bytes. Only 1, 2, and 4 are valid.
type Width uint8

const (
	Width1 Width = 1
	Width2 Width = 2
	Width4 Width = 4
)

func (w Width) valid() bool {
	return w == Width1 || w == Width2 || w == Width4
}

// bits returns the field's bit width.
func (w Width) bits() uint { return uint(w) * 8 }

// ChecksumKind selects the checksum applied uniformly to header and payload.
type ChecksumKind uint8

const (
	ChecksumNone ChecksumKind = iota
	ChecksumXOR8
	ChecksumCRC16
	ChecksumCRC32
)

// width returns the on-wire size in bytes of this checksum kind.
func (k ChecksumKind) width() int {
	switch k {
	case ChecksumXOR8:
		return 1
	case ChecksumCRC16:
		return 2
	case ChecksumCRC32:
		return 4
	default:
		return 0
	}
}

// wireWidth returns the checksum's size as a Width, for use with
// getUint/putUint. Only meaningful when the checksum kind is not ChecksumNone.
func (k ChecksumKind) wireWidth() Width {
	switch k {
	case ChecksumCRC16:
		return Width2
	case ChecksumCRC32:
		return Width4
	default:
		return Width1
	}
}

// Config holds the construction-time, wire-affecting parameters of an Endpoint.
// Both peers on a link must be built with identical Config values.
type Config struct {
	IDBytes   Width
	LenBytes  Width
	TypeBytes Width

	Checksum ChecksumKind

	UseSOF  bool
	SOFByte byte

	MaxPayloadRX int
	MaxPayloadTX int

	IDCap   int
	TypeCap int
	GenCap  int

	// ParserTimeoutTicks is the number of Tick calls a partially-received frame
	// may sit idle before the decoder resets. Zero disables the timeout.
	ParserTimeoutTicks uint32
}

// defaultConfig mirrors TinyFrame's own defaults: 1-byte ID, 2-byte LEN,
// 1-byte TYPE, CRC-16, SOF enabled with sentinel 0x01, 1 KiB payloads, and
// modest listener table capacities.
var defaultConfig = Config{
	IDBytes:   Width1,
	LenBytes:  Width2,
	TypeBytes: Width1,

	Checksum: ChecksumCRC16,

	UseSOF:  true,
	SOFByte: 0x01,

	MaxPayloadRX: 1024,
	MaxPayloadTX: 1024,

	IDCap:   20,
	TypeCap: 20,
	GenCap:  4,

	ParserTimeoutTicks: 10,
}

// Option configures an Endpoint's Config at construction time.
type Option func(*Config)

func WithIDBytes(w Width) Option   { return func(c *Config) { c.IDBytes = w } }
func WithLenBytes(w Width) Option  { return func(c *Config) { c.LenBytes = w } }
func WithTypeBytes(w Width) Option { return func(c *Config) { c.TypeBytes = w } }

func WithChecksum(k ChecksumKind) Option { return func(c *Config) { c.Checksum = k } }

// WithSOF enables the start-of-frame sentinel byte.
func WithSOF(sentinel byte) Option {
	return func(c *Config) {
		c.UseSOF = true
		c.SOFByte = sentinel
	}
}

// WithoutSOF disables the start-of-frame sentinel. Only safe on reliable
// transports, since the decoder then has no resync mechanism beyond a header
// checksum failure.
func WithoutSOF() Option { return func(c *Config) { c.UseSOF = false } }

func WithMaxPayloadRX(n int) Option { return func(c *Config) { c.MaxPayloadRX = n } }
func WithMaxPayloadTX(n int) Option { return func(c *Config) { c.MaxPayloadTX = n } }

func WithIDCap(n int) Option   { return func(c *Config) { c.IDCap = n } }
func WithTypeCap(n int) Option { return func(c *Config) { c.TypeCap = n } }
func WithGenCap(n int) Option  { return func(c *Config) { c.GenCap = n } }

func WithParserTimeoutTicks(ticks uint32) Option {
	return func(c *Config) { c.ParserTimeoutTicks = ticks }
}

// validate checks that the configuration describes a buildable wire layout.
func (c *Config) validate() error {
	if !c.IDBytes.valid() || !c.LenBytes.valid() || !c.TypeBytes.valid() {
		return ErrInvalidArgument
	}
	if c.MaxPayloadRX < 0 || c.MaxPayloadTX < 0 {
		return ErrInvalidArgument
	}
	if c.IDCap <= 0 || c.TypeCap <= 0 || c.GenCap <= 0 {
		return ErrInvalidArgument
	}
	maxLen := uint64(1)<<c.LenBytes.bits() - 1
	if uint64(c.MaxPayloadRX) > maxLen || uint64(c.MaxPayloadTX) > maxLen {
		return ErrInvalidArgument
	}
	return nil
}

// headerLen is the number of bytes from (inclusive) SOF through TYPE.
func (c *Config) headerLen() int {
	n := int(c.IDBytes) + int(c.LenBytes) + int(c.TypeBytes)
	if c.UseSOF {
		n++
	}
	return n
}

// idMask is TinyFrame's TF_ID_MASK: all-ones in the low bits of the ID field,
// excluding the peer bit.
func (c *Config) idMask() uint64 {
	return uint64(1)<<(c.IDBytes.bits()-1) - 1
}

// idPeerBit is TinyFrame's TF_ID_PEERBIT: the reserved high bit of the ID field.
func (c *Config) idPeerBit() uint64 {
	return uint64(1) << (c.IDBytes.bits() - 1)
}

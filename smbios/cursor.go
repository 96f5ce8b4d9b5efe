// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smbios

import "encoding/binary"

// A Cursor is a forward-only reader over a Structure's formatted section.
// All multi-byte reads are little-endian, per the SMBIOS specification.
//
// Cursor reads do not perform bounds checks of their own.  Callers must
// verify Remaining before every read; the field decode engine upholds this
// by substituting an absent value whenever too few bytes remain.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor creates a Cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.b) - c.off
}

// Uint8 reads one byte and advances the cursor.
func (c *Cursor) Uint8() uint8 {
	v := c.b[c.off]
	c.off++
	return v
}

// Uint16 reads a little-endian uint16 and advances the cursor.
func (c *Cursor) Uint16() uint16 {
	v := binary.LittleEndian.Uint16(c.b[c.off : c.off+2])
	c.off += 2
	return v
}

// Uint32 reads a little-endian uint32 and advances the cursor.
func (c *Cursor) Uint32() uint32 {
	v := binary.LittleEndian.Uint32(c.b[c.off : c.off+4])
	c.off += 4
	return v
}

// Uint64 reads a little-endian uint64 and advances the cursor.
func (c *Cursor) Uint64() uint64 {
	v := binary.LittleEndian.Uint64(c.b[c.off : c.off+8])
	c.off += 8
	return v
}

// Int8 reads one signed byte and advances the cursor.
func (c *Cursor) Int8() int8 { return int8(c.Uint8()) }

// Int16 reads a little-endian int16 and advances the cursor.
func (c *Cursor) Int16() int16 { return int16(c.Uint16()) }

// Int32 reads a little-endian int32 and advances the cursor.
func (c *Cursor) Int32() int32 { return int32(c.Uint32()) }

// Int64 reads a little-endian int64 and advances the cursor.
func (c *Cursor) Int64() int64 { return int64(c.Uint64()) }

// Bytes reads n bytes and advances the cursor.  The returned slice is a
// copy and does not alias the underlying buffer.
func (c *Cursor) Bytes(n int) []byte {
	v := make([]byte, n)
	copy(v, c.b[c.off:c.off+n])
	c.off += n
	return v
}

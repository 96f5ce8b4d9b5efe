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

import "fmt"

// A FieldKind selects the decode strategy for one schema field.
type FieldKind int

// Field kinds supported by the decode engine.  FieldString decodes a one
// byte, 1-based string-set index and resolves it against the structure's
// strings.  FieldStruct recurses into Field.Sub with the same cursor and
// string-set.
const (
	FieldUint8 FieldKind = iota
	FieldUint16
	FieldUint32
	FieldUint64
	FieldInt8
	FieldInt16
	FieldInt32
	FieldInt64
	FieldString
	FieldStruct
)

// width returns the number of bytes one element of kind k occupies in the
// formatted section.  A string reference occupies its single index byte.
// Nested structures have no fixed width; the engine probes them with a one
// byte minimum.
func (k FieldKind) width() int {
	switch k {
	case FieldUint8, FieldInt8, FieldString, FieldStruct:
		return 1
	case FieldUint16, FieldInt16:
		return 2
	case FieldUint32, FieldInt32:
		return 4
	case FieldUint64, FieldInt64:
		return 8
	default:
		panic(fmt.Sprintf("smbios: unhandled field kind %d", k))
	}
}

// A LengthFunc computes the element count of a variable-length field from
// fields decoded earlier in the same record.  It returns ok == false when
// the count cannot be determined, such as when a referenced sibling field
// is itself absent.
type LengthFunc func(r *Record) (n int, ok bool)

// A Field describes a single entry of a structure's formatted section.
//
// Exactly one of the following is set for non-scalar fields: Array for a
// fixed element count, Length for a count computed from sibling fields.
// Sub must be set if and only if Kind is FieldStruct.
type Field struct {
	Name   string
	Kind   FieldKind
	Array  int
	Length LengthFunc
	Sub    *Schema
}

// A Schema is the ordered field list for one structure type.  Field order
// is significant: a Length expression may only reference fields declared
// before the field that carries it.
type Schema struct {
	Type   uint8
	Name   string
	Fields []Field
}

// Validate checks the schema for construction errors: conflicting length
// declarations, element kinds the array and vector decoders do not handle,
// and missing or stray sub-schemas.  These are programming mistakes in a
// schema definition, not decode-time conditions; Decode refuses to run a
// schema that fails validation.
func (s *Schema) Validate() error {
	for _, f := range s.Fields {
		if f.Array > 0 && f.Length != nil {
			return fmt.Errorf("field %q has both a fixed and a computed length", f.Name)
		}
		if f.Array > 0 && !arrayElementKind(f.Kind) {
			return fmt.Errorf("field %q: fixed arrays support uint8, uint16 and uint32 elements", f.Name)
		}
		if f.Length != nil && !vectorElementKind(f.Kind) {
			return fmt.Errorf("field %q: vectors support uint8, uint16, uint32, string and struct elements", f.Name)
		}
		if (f.Sub != nil) != (f.Kind == FieldStruct) {
			return fmt.Errorf("field %q: Sub is required exactly for FieldStruct", f.Name)
		}
		if f.Sub != nil {
			if err := f.Sub.Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}

// arrayElementKind reports whether k is an element kind decodeArray
// handles.
func arrayElementKind(k FieldKind) bool {
	switch k {
	case FieldUint8, FieldUint16, FieldUint32:
		return true
	}

	return false
}

// vectorElementKind reports whether k is an element kind decodeVector
// handles.
func vectorElementKind(k FieldKind) bool {
	switch k {
	case FieldUint8, FieldUint16, FieldUint32, FieldString, FieldStruct:
		return true
	}

	return false
}

// mustValid panics on schema construction errors so that a broken table
// definition fails at startup.
func (s *Schema) mustValid() {
	if err := s.Validate(); err != nil {
		panic("smbios: " + err.Error())
	}
}

// A Record holds the decoded field values of one structure.  Values decode
// as present or absent: a field is absent when the structure was produced
// by a firmware revision that predates it, when its string index resolves
// to no string, or when its element count cannot be computed.  Callers must
// treat absent as "not reported by this firmware", not as corruption.
type Record struct {
	Header  Header
	Strings []string

	version Version
	values  map[string]interface{}
}

// Version returns the specification version the record was decoded under.
func (r *Record) Version() Version { return r.version }

// Uint8 returns the named field as a uint8.
func (r *Record) Uint8(name string) (uint8, bool) {
	v, ok := r.values[name].(uint8)
	return v, ok
}

// Uint16 returns the named field as a uint16.
func (r *Record) Uint16(name string) (uint16, bool) {
	v, ok := r.values[name].(uint16)
	return v, ok
}

// Uint32 returns the named field as a uint32.
func (r *Record) Uint32(name string) (uint32, bool) {
	v, ok := r.values[name].(uint32)
	return v, ok
}

// Uint64 returns the named field as a uint64.
func (r *Record) Uint64(name string) (uint64, bool) {
	v, ok := r.values[name].(uint64)
	return v, ok
}

// Int8 returns the named field as an int8.
func (r *Record) Int8(name string) (int8, bool) {
	v, ok := r.values[name].(int8)
	return v, ok
}

// Int16 returns the named field as an int16.
func (r *Record) Int16(name string) (int16, bool) {
	v, ok := r.values[name].(int16)
	return v, ok
}

// Int32 returns the named field as an int32.
func (r *Record) Int32(name string) (int32, bool) {
	v, ok := r.values[name].(int32)
	return v, ok
}

// Int64 returns the named field as an int64.
func (r *Record) Int64(name string) (int64, bool) {
	v, ok := r.values[name].(int64)
	return v, ok
}

// String returns the named field as a resolved string.
func (r *Record) String(name string) (string, bool) {
	v, ok := r.values[name].(string)
	return v, ok
}

// Uint8s returns the named fixed array or vector of uint8 elements.
func (r *Record) Uint8s(name string) ([]uint8, bool) {
	v, ok := r.values[name].([]uint8)
	return v, ok
}

// Uint16s returns the named fixed array or vector of uint16 elements.
func (r *Record) Uint16s(name string) ([]uint16, bool) {
	v, ok := r.values[name].([]uint16)
	return v, ok
}

// Uint32s returns the named fixed array or vector of uint32 elements.
func (r *Record) Uint32s(name string) ([]uint32, bool) {
	v, ok := r.values[name].([]uint32)
	return v, ok
}

// StringSlice returns the named vector of resolved strings.
func (r *Record) StringSlice(name string) ([]string, bool) {
	v, ok := r.values[name].([]string)
	return v, ok
}

// Record returns the named nested sub-record.
func (r *Record) Record(name string) (*Record, bool) {
	v, ok := r.values[name].(*Record)
	return v, ok
}

// Records returns the named vector of nested sub-records.
func (r *Record) Records(name string) ([]*Record, bool) {
	v, ok := r.values[name].([]*Record)
	return v, ok
}

// Present reports whether the named field decoded to a value.
func (r *Record) Present(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Decode decodes one Record from a Structure's formatted section.
//
// Fields for which too few bytes remain are absent, along with every field
// declared after them: SMBIOS minor revisions only ever append fields, so
// a short formatted section means the producing firmware predates the
// schema's tail.  Decode never reads past the formatted section and never
// fails; truncation is the expected case for older firmwares, not an
// error.
//
// Decode panics on a schema that fails Validate, before any field is
// read: a malformed schema is a definition error, never an input-driven
// one.
func (s *Schema) Decode(st *Structure, v Version) *Record {
	s.mustValid()

	r := &Record{
		Header:  st.Header,
		Strings: st.Strings,
		version: v,
		values:  make(map[string]interface{}),
	}
	s.decode(NewCursor(st.Formatted), st, r)
	return r
}

// decode runs the schema's fields against c, storing present values in r.
// Nested schemas share the cursor and string-set of the outer structure.
func (s *Schema) decode(c *Cursor, st *Structure, r *Record) {
	truncated := false
	for _, f := range s.Fields {
		if truncated {
			continue
		}

		switch {
		case f.Length != nil:
			n, ok := f.Length(r)
			if !ok || n < 0 {
				// The element count is unknowable, usually because a
				// referenced sibling is absent.  Only this field is
				// absent; the cursor has not moved.
				continue
			}
			truncated = !decodeVector(c, st, r, f, n)

		case f.Array > 0:
			truncated = !decodeArray(c, r, f)

		case f.Kind == FieldStruct:
			if c.Remaining() < 1 {
				truncated = true
				continue
			}
			r.values[f.Name] = f.Sub.decodeNested(c, st, r.version)

		case f.Kind == FieldString:
			if c.Remaining() < 1 {
				truncated = true
				continue
			}
			if v, ok := st.GetStringByIndex(c.Uint8()); ok {
				r.values[f.Name] = v
			}

		default:
			if c.Remaining() < f.Kind.width() {
				truncated = true
				continue
			}
			r.values[f.Name] = readScalar(c, f.Kind)
		}
	}
}

// decodeNested decodes a sub-record in place, consuming exactly the bytes
// its own fields claim from the shared cursor.
func (s *Schema) decodeNested(c *Cursor, st *Structure, v Version) *Record {
	sub := &Record{
		Header:  st.Header,
		Strings: st.Strings,
		version: v,
		values:  make(map[string]interface{}),
	}
	s.decode(c, st, sub)
	return sub
}

// decodeArray decodes a fixed numeric array field.  It reports false when
// too few bytes remain, leaving the cursor in place.
func decodeArray(c *Cursor, r *Record, f Field) bool {
	if c.Remaining() < f.Array*f.Kind.width() {
		return false
	}

	switch f.Kind {
	case FieldUint8:
		r.values[f.Name] = c.Bytes(f.Array)
	case FieldUint16:
		v := make([]uint16, f.Array)
		for i := range v {
			v[i] = c.Uint16()
		}
		r.values[f.Name] = v
	case FieldUint32:
		v := make([]uint32, f.Array)
		for i := range v {
			v[i] = c.Uint32()
		}
		r.values[f.Name] = v
	default:
		panic(fmt.Sprintf("smbios: unhandled array kind %d", f.Kind))
	}

	return true
}

// decodeVector decodes a variable-length field of n elements.  It reports
// false when too few bytes remain for the whole vector: a vector is never
// partially populated.
func decodeVector(c *Cursor, st *Structure, r *Record, f Field, n int) bool {
	if c.Remaining() < n*f.Kind.width() {
		return false
	}

	switch f.Kind {
	case FieldUint8:
		r.values[f.Name] = c.Bytes(n)
	case FieldUint16:
		v := make([]uint16, n)
		for i := range v {
			v[i] = c.Uint16()
		}
		r.values[f.Name] = v
	case FieldUint32:
		v := make([]uint32, n)
		for i := range v {
			v[i] = c.Uint32()
		}
		r.values[f.Name] = v
	case FieldString:
		// Unresolvable indices are skipped rather than failing the
		// vector; their index bytes are still consumed.
		v := make([]string, 0, n)
		for i := 0; i < n; i++ {
			if s, ok := st.GetStringByIndex(c.Uint8()); ok {
				v = append(v, s)
			}
		}
		r.values[f.Name] = v
	case FieldStruct:
		v := make([]*Record, n)
		for i := range v {
			v[i] = f.Sub.decodeNested(c, st, r.version)
		}
		r.values[f.Name] = v
	default:
		panic(fmt.Sprintf("smbios: unhandled vector kind %d", f.Kind))
	}

	return true
}

// readScalar reads one scalar numeric value of kind k.
func readScalar(c *Cursor, k FieldKind) interface{} {
	switch k {
	case FieldUint8:
		return c.Uint8()
	case FieldUint16:
		return c.Uint16()
	case FieldUint32:
		return c.Uint32()
	case FieldUint64:
		return c.Uint64()
	case FieldInt8:
		return c.Int8()
	case FieldInt16:
		return c.Int16()
	case FieldInt32:
		return c.Int32()
	case FieldInt64:
		return c.Int64()
	default:
		panic(fmt.Sprintf("smbios: unhandled scalar kind %d", k))
	}
}

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

package smbios_test

import (
	"testing"

	"github.com/firmwarekit/go-smbios/smbios"
	"github.com/google/go-cmp/cmp"
)

// scalarSchema mixes field widths so that truncation can land between
// fields of different sizes.
var scalarSchema = &smbios.Schema{
	Type: 128, Name: "Test Scalars",
	Fields: []smbios.Field{
		{Name: "a", Kind: smbios.FieldUint8},
		{Name: "b", Kind: smbios.FieldUint16},
		{Name: "c", Kind: smbios.FieldUint32},
		{Name: "d", Kind: smbios.FieldUint64},
	},
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema *smbios.Schema
		ok     bool
	}{
		{
			name:   "valid scalar schema",
			schema: scalarSchema,
			ok:     true,
		},
		{
			name: "valid array and vector kinds",
			schema: &smbios.Schema{
				Type: 128, Name: "Test Valid",
				Fields: []smbios.Field{
					{Name: "id", Kind: smbios.FieldUint8, Array: 4},
					{Name: "count", Kind: smbios.FieldUint8},
					{Name: "handles", Kind: smbios.FieldUint16, Length: func(r *smbios.Record) (int, bool) {
						n, ok := r.Uint8("count")
						return int(n), ok
					}},
				},
			},
			ok: true,
		},
		{
			name: "uint64 array",
			schema: &smbios.Schema{
				Type: 128, Name: "Test Bad Array",
				Fields: []smbios.Field{
					{Name: "wide", Kind: smbios.FieldUint64, Array: 2},
				},
			},
		},
		{
			name: "string array",
			schema: &smbios.Schema{
				Type: 128, Name: "Test String Array",
				Fields: []smbios.Field{
					{Name: "names", Kind: smbios.FieldString, Array: 2},
				},
			},
		},
		{
			name: "uint64 vector",
			schema: &smbios.Schema{
				Type: 128, Name: "Test Bad Vector",
				Fields: []smbios.Field{
					{Name: "wide", Kind: smbios.FieldUint64, Length: func(r *smbios.Record) (int, bool) {
						return 2, true
					}},
				},
			},
		},
		{
			name: "fixed and computed length",
			schema: &smbios.Schema{
				Type: 128, Name: "Test Conflict",
				Fields: []smbios.Field{
					{Name: "data", Kind: smbios.FieldUint8, Array: 2, Length: func(r *smbios.Record) (int, bool) {
						return 2, true
					}},
				},
			},
		},
		{
			name: "struct without sub-schema",
			schema: &smbios.Schema{
				Type: 128, Name: "Test No Sub",
				Fields: []smbios.Field{
					{Name: "entries", Kind: smbios.FieldStruct},
				},
			},
		},
		{
			name: "invalid nested sub-schema",
			schema: &smbios.Schema{
				Type: 128, Name: "Test Bad Sub",
				Fields: []smbios.Field{
					{Name: "entry", Kind: smbios.FieldStruct, Sub: &smbios.Schema{
						Name: "Test Bad Sub Entry",
						Fields: []smbios.Field{
							{Name: "wide", Kind: smbios.FieldUint64, Array: 2},
						},
					}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected a validation error, but none occurred")
			}
		})
	}
}

func TestSchemaDecodeInvalidSchemaPanics(t *testing.T) {
	// A schema whose element kind the array decoder cannot represent is a
	// definition error; Decode must refuse it up front regardless of how
	// many bytes the formatted section carries.
	schema := &smbios.Schema{
		Type: 128, Name: "Test Invalid",
		Fields: []smbios.Field{
			{Name: "wide", Kind: smbios.FieldUint64, Array: 2},
		},
	}

	s := &smbios.Structure{
		Header: smbios.Header{Type: 128, Length: 20},
		Formatted: []byte{
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
			0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
		},
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected Decode to panic on an invalid schema")
		}
	}()

	_ = schema.Decode(s, smbios.Version{Major: 3, Minor: 2})
}

func TestSchemaDecodeTruncation(t *testing.T) {
	// Full formatted section for all four fields is 15 bytes.  Every
	// prefix must decode without error, with fields becoming absent from
	// the first field that no longer fits.
	full := []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}

	tests := []struct {
		name    string
		length  int
		present []string
	}{
		{name: "empty", length: 0, present: nil},
		{name: "first only", length: 1, present: []string{"a"}},
		{name: "second partial", length: 2, present: []string{"a"}},
		{name: "two fields", length: 3, present: []string{"a", "b"}},
		{name: "third partial", length: 5, present: []string{"a", "b"}},
		{name: "three fields", length: 7, present: []string{"a", "b", "c"}},
		{name: "fourth partial", length: 14, present: []string{"a", "b", "c"}},
		{name: "all fields", length: 15, present: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &smbios.Structure{
				Header: smbios.Header{
					Type:   128,
					Length: uint8(4 + tt.length),
				},
				Formatted: full[:tt.length],
			}

			r := scalarSchema.Decode(s, smbios.Version{Major: 3, Minor: 2})

			var present []string
			for _, name := range []string{"a", "b", "c", "d"} {
				if r.Present(name) {
					present = append(present, name)
				}
			}

			if diff := cmp.Diff(tt.present, present); diff != "" {
				t.Fatalf("unexpected present fields (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchemaDecodeScalarValues(t *testing.T) {
	s := &smbios.Structure{
		Header: smbios.Header{Type: 128, Length: 19},
		Formatted: []byte{
			0x01,
			0x02, 0x03,
			0x04, 0x05, 0x06, 0x07,
			0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		},
	}

	r := scalarSchema.Decode(s, smbios.Version{Major: 3, Minor: 2})

	if v, ok := r.Uint8("a"); !ok || v != 0x01 {
		t.Fatalf("unexpected a: %#02x, %v", v, ok)
	}
	if v, ok := r.Uint16("b"); !ok || v != 0x0302 {
		t.Fatalf("unexpected b: %#04x, %v", v, ok)
	}
	if v, ok := r.Uint32("c"); !ok || v != 0x07060504 {
		t.Fatalf("unexpected c: %#08x, %v", v, ok)
	}
	if v, ok := r.Uint64("d"); !ok || v != 0x0f0e0d0c0b0a0908 {
		t.Fatalf("unexpected d: %#016x, %v", v, ok)
	}
}

func TestSchemaDecodeStrings(t *testing.T) {
	schema := &smbios.Schema{
		Type: 128, Name: "Test Strings",
		Fields: []smbios.Field{
			{Name: "first", Kind: smbios.FieldString},
			{Name: "second", Kind: smbios.FieldString},
			{Name: "after", Kind: smbios.FieldUint8},
		},
	}

	tests := []struct {
		name      string
		formatted []byte
		strings   []string
		first     string
		firstOK   bool
		second    string
		secondOK  bool
		after     uint8
	}{
		{
			name:      "both resolve",
			formatted: []byte{0x01, 0x02, 0xaa},
			strings:   []string{"Acme", "Widget"},
			first:     "Acme", firstOK: true,
			second: "Widget", secondOK: true,
			after: 0xaa,
		},
		{
			name:      "index zero is absent, byte still consumed",
			formatted: []byte{0x00, 0x01, 0xbb},
			strings:   []string{"Acme"},
			second:    "Acme", secondOK: true,
			after: 0xbb,
		},
		{
			name:      "out of range index is absent, byte still consumed",
			formatted: []byte{0x07, 0x01, 0xcc},
			strings:   []string{"Acme"},
			second:    "Acme", secondOK: true,
			after: 0xcc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &smbios.Structure{
				Header:    smbios.Header{Type: 128, Length: uint8(4 + len(tt.formatted))},
				Formatted: tt.formatted,
				Strings:   tt.strings,
			}

			r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

			if v, ok := r.String("first"); ok != tt.firstOK || v != tt.first {
				t.Fatalf("unexpected first: %q, %v", v, ok)
			}
			if v, ok := r.String("second"); ok != tt.secondOK || v != tt.second {
				t.Fatalf("unexpected second: %q, %v", v, ok)
			}

			// An unresolved string index is not truncation; the field
			// after it must still decode.
			if v, ok := r.Uint8("after"); !ok || v != tt.after {
				t.Fatalf("unexpected after: %#02x, %v", v, ok)
			}
		})
	}
}

func TestSchemaDecodeFixedArray(t *testing.T) {
	schema := &smbios.Schema{
		Type: 128, Name: "Test Array",
		Fields: []smbios.Field{
			{Name: "id", Kind: smbios.FieldUint8, Array: 4},
			{Name: "tail", Kind: smbios.FieldUint8},
		},
	}

	s := &smbios.Structure{
		Header:    smbios.Header{Type: 128, Length: 9},
		Formatted: []byte{0xde, 0xad, 0xbe, 0xef, 0x7f},
	}

	r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

	got, ok := r.Uint8s("id")
	if !ok {
		t.Fatal("expected id to be present")
	}
	if diff := cmp.Diff([]uint8{0xde, 0xad, 0xbe, 0xef}, got); diff != "" {
		t.Fatalf("unexpected id (-want +got):\n%s", diff)
	}

	if v, ok := r.Uint8("tail"); !ok || v != 0x7f {
		t.Fatalf("unexpected tail: %#02x, %v", v, ok)
	}

	// A short array is absent entirely, never partial.
	s = &smbios.Structure{
		Header:    smbios.Header{Type: 128, Length: 7},
		Formatted: []byte{0xde, 0xad, 0xbe},
	}
	r = schema.Decode(s, smbios.Version{Major: 3, Minor: 2})
	if r.Present("id") || r.Present("tail") {
		t.Fatal("expected id and tail to be absent")
	}
}

func TestSchemaDecodeVector(t *testing.T) {
	schema := &smbios.Schema{
		Type: 128, Name: "Test Vector",
		Fields: []smbios.Field{
			{Name: "count", Kind: smbios.FieldUint8},
			{
				Name: "handles", Kind: smbios.FieldUint16,
				Length: func(r *smbios.Record) (int, bool) {
					n, ok := r.Uint8("count")
					return int(n), ok
				},
			},
			{Name: "tail", Kind: smbios.FieldUint8},
		},
	}

	t.Run("count and elements present", func(t *testing.T) {
		s := &smbios.Structure{
			Header:    smbios.Header{Type: 128, Length: 10},
			Formatted: []byte{0x02, 0x11, 0x00, 0x22, 0x00, 0x99},
		}

		r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

		got, ok := r.Uint16s("handles")
		if !ok {
			t.Fatal("expected handles to be present")
		}
		if diff := cmp.Diff([]uint16{0x0011, 0x0022}, got); diff != "" {
			t.Fatalf("unexpected handles (-want +got):\n%s", diff)
		}

		if v, ok := r.Uint8("tail"); !ok || v != 0x99 {
			t.Fatalf("unexpected tail: %#02x, %v", v, ok)
		}
	})

	t.Run("zero count yields empty vector", func(t *testing.T) {
		s := &smbios.Structure{
			Header:    smbios.Header{Type: 128, Length: 6},
			Formatted: []byte{0x00, 0x55},
		}

		r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

		got, ok := r.Uint16s("handles")
		if !ok || len(got) != 0 {
			t.Fatalf("expected empty handles, got: %v, %v", got, ok)
		}
		if v, ok := r.Uint8("tail"); !ok || v != 0x55 {
			t.Fatalf("unexpected tail: %#02x, %v", v, ok)
		}
	})

	t.Run("too few bytes for whole vector", func(t *testing.T) {
		s := &smbios.Structure{
			Header:    smbios.Header{Type: 128, Length: 8},
			Formatted: []byte{0x02, 0x11, 0x00, 0x22},
		}

		r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

		// A vector never partially decodes, and the gap it leaves marks
		// the rest of the schema absent.
		if r.Present("handles") || r.Present("tail") {
			t.Fatal("expected handles and tail to be absent")
		}
	})
}

func TestSchemaDecodeVectorProductLength(t *testing.T) {
	schema := &smbios.Schema{
		Type: 128, Name: "Test Product Vector",
		Fields: []smbios.Field{
			{Name: "count", Kind: smbios.FieldUint8},
			{Name: "width", Kind: smbios.FieldUint8},
			{
				Name: "data", Kind: smbios.FieldUint8,
				Length: func(r *smbios.Record) (int, bool) {
					count, ok := r.Uint8("count")
					if !ok {
						return 0, false
					}
					width, ok := r.Uint8("width")
					if !ok {
						return 0, false
					}
					return int(count) * int(width), true
				},
			},
		},
	}

	t.Run("exact length present", func(t *testing.T) {
		s := &smbios.Structure{
			Header:    smbios.Header{Type: 128, Length: 12},
			Formatted: []byte{0x03, 0x02, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f},
		}

		r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

		got, ok := r.Uint8s("data")
		if !ok {
			t.Fatal("expected data to be present")
		}
		if diff := cmp.Diff([]uint8{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}, got); diff != "" {
			t.Fatalf("unexpected data (-want +got):\n%s", diff)
		}
	})

	t.Run("short body absent, not partial", func(t *testing.T) {
		s := &smbios.Structure{
			Header:    smbios.Header{Type: 128, Length: 11},
			Formatted: []byte{0x03, 0x02, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e},
		}

		r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

		if r.Present("data") {
			t.Fatal("expected data to be absent")
		}
	})
}

func TestSchemaDecodeNestedVector(t *testing.T) {
	sub := &smbios.Schema{
		Name: "Test Pair",
		Fields: []smbios.Field{
			{Name: "load", Kind: smbios.FieldUint8},
			{Name: "handle", Kind: smbios.FieldUint16},
		},
	}

	schema := &smbios.Schema{
		Type: 128, Name: "Test Nested",
		Fields: []smbios.Field{
			{Name: "count", Kind: smbios.FieldUint8},
			{
				Name: "pairs", Kind: smbios.FieldStruct, Sub: sub,
				Length: func(r *smbios.Record) (int, bool) {
					n, ok := r.Uint8("count")
					return int(n), ok
				},
			},
			{Name: "tail", Kind: smbios.FieldUint8},
		},
	}

	s := &smbios.Structure{
		Header: smbios.Header{Type: 128, Length: 12},
		Formatted: []byte{
			0x02,
			0x05, 0x10, 0x00,
			0x07, 0x20, 0x00,
			0xee,
		},
	}

	r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

	pairs, ok := r.Records("pairs")
	if !ok || len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got: %d, %v", len(pairs), ok)
	}

	if v, ok := pairs[0].Uint8("load"); !ok || v != 0x05 {
		t.Fatalf("unexpected pairs[0] load: %#02x, %v", v, ok)
	}
	if v, ok := pairs[0].Uint16("handle"); !ok || v != 0x0010 {
		t.Fatalf("unexpected pairs[0] handle: %#04x, %v", v, ok)
	}
	if v, ok := pairs[1].Uint8("load"); !ok || v != 0x07 {
		t.Fatalf("unexpected pairs[1] load: %#02x, %v", v, ok)
	}
	if v, ok := pairs[1].Uint16("handle"); !ok || v != 0x0020 {
		t.Fatalf("unexpected pairs[1] handle: %#04x, %v", v, ok)
	}

	// The nested records consumed exactly their own bytes from the shared
	// cursor, so the tail follows immediately.
	if v, ok := r.Uint8("tail"); !ok || v != 0xee {
		t.Fatalf("unexpected tail: %#02x, %v", v, ok)
	}
}

func TestSchemaDecodeStringVector(t *testing.T) {
	schema := &smbios.Schema{
		Type: 128, Name: "Test String Vector",
		Fields: []smbios.Field{
			{Name: "count", Kind: smbios.FieldUint8},
			{
				Name: "names", Kind: smbios.FieldString,
				Length: func(r *smbios.Record) (int, bool) {
					n, ok := r.Uint8("count")
					return int(n), ok
				},
			},
			{Name: "tail", Kind: smbios.FieldUint8},
		},
	}

	// Three indices: valid, zero, out of range.  The unresolved entries
	// are skipped, but all three index bytes are consumed.
	s := &smbios.Structure{
		Header:    smbios.Header{Type: 128, Length: 9},
		Formatted: []byte{0x03, 0x01, 0x00, 0x09, 0x42},
		Strings:   []string{"Acme"},
	}

	r := schema.Decode(s, smbios.Version{Major: 3, Minor: 2})

	names, ok := r.StringSlice("names")
	if !ok {
		t.Fatal("expected names to be present")
	}
	if diff := cmp.Diff([]string{"Acme"}, names); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}

	if v, ok := r.Uint8("tail"); !ok || v != 0x42 {
		t.Fatalf("unexpected tail: %#02x, %v", v, ok)
	}
}

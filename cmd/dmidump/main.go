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

// Command dmidump decodes and displays SMBIOS structures, dmidecode-style.
package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/firmwarekit/go-smbios/smbios"
)

var flagType = flag.StringSliceP("type", "t", nil,
	`Only display structures of the given type.  TYPE is a structure type number or one of the keywords: bios, system, baseboard, chassis, processor, memory, cache, connector, slot.  May be given more than once; the union of all given types is displayed.`)

// typeGroups maps dmidecode-style keywords to structure type sets.
var typeGroups = map[string][]uint8{
	"bios":      {0, 13},
	"system":    {1, 12, 15, 23, 32},
	"baseboard": {2, 10, 41},
	"chassis":   {3},
	"processor": {4},
	"memory":    {5, 6, 16, 17},
	"cache":     {7},
	"connector": {8},
	"slot":      {9},
}

// parseTypeFilter parses the --type argument(s) into the set of structure
// types to display.  An empty filter displays everything.
func parseTypeFilter(args []string) (map[uint8]bool, error) {
	if len(args) == 0 {
		return nil, nil
	}

	types := map[uint8]bool{}
	for _, arg := range args {
		if group, ok := typeGroups[strings.ToLower(arg)]; ok {
			for _, t := range group {
				types[t] = true
			}
			continue
		}

		u, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid type %q", arg)
		}
		types[uint8(u)] = true
	}

	return types, nil
}

func main() {
	flag.Parse()

	filter, err := parseTypeFilter(*flagType)
	if err != nil {
		log.Fatalf("invalid --type: %v", err)
	}

	// Find SMBIOS data in operating system-specific location.
	rc, ep, err := smbios.Stream()
	if err != nil {
		log.Fatalf("failed to open stream: %v", err)
	}
	// Be sure to close the stream!
	defer rc.Close()

	// Decode SMBIOS structures from the stream.
	d := smbios.NewDecoder(rc)
	ss, err := d.Decode()
	if err != nil {
		log.Fatalf("failed to decode structures: %v", err)
	}

	// Determine SMBIOS version and table location from entry point.
	version := smbios.EntryPointVersion(ep)
	addr, size := ep.Table()

	fmt.Printf("SMBIOS %s - table: address: %#x, size: %d\n\n",
		version, addr, size)

	for _, s := range ss {
		if filter != nil && !filter[s.Header.Type] {
			continue
		}

		dumpStructure(s, version)
	}
}

// dumpStructure prints one structure: schema-decoded fields when a schema
// is registered for the type, raw formatted bytes and strings otherwise.
func dumpStructure(s *smbios.Structure, version smbios.Version) {
	fmt.Printf("Handle %#04x, DMI type %d, %d bytes\n",
		s.Header.Handle, s.Header.Type, s.Header.Length)
	fmt.Println(smbios.TableTypeName(s.Header.Type))

	schema, ok := smbios.SchemaForType(s.Header.Type)
	if !ok {
		dumpRaw(s)
		fmt.Println()
		return
	}

	r := schema.Decode(s, version)
	for _, f := range schema.Fields {
		if v, ok := formatField(r, f); ok {
			fmt.Printf("\t%s: %s\n", f.Name, v)
		}
	}
	fmt.Println()
}

// dumpRaw prints the formatted section as hex plus the string-set, for
// OEM structure types without a registered schema.
func dumpRaw(s *smbios.Structure) {
	if len(s.Formatted) > 0 {
		fmt.Printf("\tdata: % x\n", s.Formatted)
	}
	for i, str := range s.Strings {
		fmt.Printf("\tstring %d: %s\n", i+1, str)
	}
}

// formatField renders one present field value for display.
func formatField(r *smbios.Record, f smbios.Field) (string, bool) {
	switch f.Kind {
	case smbios.FieldString:
		v, ok := r.String(f.Name)
		return v, ok

	case smbios.FieldStruct:
		v, ok := r.Records(f.Name)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%d entries", len(v)), true

	case smbios.FieldUint8:
		if f.Array > 0 || f.Length != nil {
			v, ok := r.Uint8s(f.Name)
			if !ok {
				return "", false
			}
			return fmt.Sprintf("% x", v), true
		}
		v, ok := r.Uint8(f.Name)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%#02x", v), true

	case smbios.FieldUint16:
		if f.Array > 0 || f.Length != nil {
			v, ok := r.Uint16s(f.Name)
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%#04x", v), true
		}
		v, ok := r.Uint16(f.Name)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%#04x", v), true

	case smbios.FieldUint32:
		v, ok := r.Uint32(f.Name)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%#08x", v), true

	case smbios.FieldUint64:
		v, ok := r.Uint64(f.Name)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%#016x", v), true

	default:
		return "", false
	}
}

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

// Command lsdimms lists memory DIMM information from SMBIOS.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/firmwarekit/go-smbios/smbios"
)

func main() {
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

	version := smbios.EntryPointVersion(ep)
	fmt.Printf("SMBIOS %s\n", version)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Locator", "Bank", "Size", "Type", "Speed", "Manufacturer", "Part Number"})

	for _, s := range ss {
		// Only look at memory devices.
		if s.Header.Type != 17 {
			continue
		}

		r, ok := smbios.DecodeStructure(s, version)
		if !ok {
			continue
		}

		locator, _ := r.String("device_locator")
		bank, _ := r.String("bank_locator")

		size, ok := smbios.MemoryDeviceSizeBytes(r)
		if !ok || size == 0 {
			t.AppendRow(table.Row{locator, bank, "empty", "", "", "", ""})
			continue
		}

		manufacturer, _ := r.String("manufacturer")
		partNumber, _ := r.String("part_number")

		var speed string
		if v, ok := r.Uint16("speed"); ok {
			speed = fmt.Sprintf("%d MT/s", v)
		}

		t.AppendRow(table.Row{
			locator,
			bank,
			formatSize(size),
			memoryTypeName(r),
			speed,
			manufacturer,
			partNumber,
		})
	}

	t.Render()
}

// formatSize renders a byte count with its largest whole binary unit.
func formatSize(size uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)

	switch {
	case size >= gb && size%gb == 0:
		return fmt.Sprintf("%d GB", size/gb)
	case size >= mb && size%mb == 0:
		return fmt.Sprintf("%d MB", size/mb)
	default:
		return fmt.Sprintf("%d KB", size/kb)
	}
}

func memoryTypeName(r *smbios.Record) string {
	v, ok := r.Uint8("memory_type")
	if !ok {
		return ""
	}

	name, err := smbios.MemoryDeviceTypeString(v)
	if err != nil {
		return fmt.Sprintf("unknown (%#02x)", v)
	}

	return name
}

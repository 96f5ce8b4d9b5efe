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

import (
	"fmt"

	"github.com/google/uuid"
)

// BIOSROMSizeKB returns the BIOS ROM size from a type 0 record in
// kilobytes.  The one byte size field saturates at 0xFF, in which case the
// extended ROM size field holds the value; its top two bits select MB or
// GB units.
func BIOSROMSizeKB(r *Record) (uint64, bool) {
	size, ok := r.Uint8("bios_rom_size")
	if !ok {
		return 0, false
	}

	if size != 0xFF {
		return (uint64(size) + 1) * 64, true
	}

	ext, ok := r.Uint16("extended_bios_rom_size")
	if !ok {
		return 0, false
	}

	v := uint64(ext & 0x3FFF)
	switch ext >> 14 {
	case 0x00: // MB
		return v * 1024, true
	case 0x01: // GB
		return v * 1024 * 1024, true
	default:
		return 0, false
	}
}

// BIOSRuntimeSizeKB returns the BIOS runtime size from a type 0 record in
// kilobytes, derived from the BIOS starting address segment.
func BIOSRuntimeSizeKB(r *Record) (uint32, bool) {
	addr, ok := r.Uint16("bios_starting_address")
	if !ok {
		return 0, false
	}

	return (0x10000 - uint32(addr)) * 16 / 1024, true
}

// SystemBIOSRelease returns the "major.minor" system BIOS release of a
// type 0 record.
func SystemBIOSRelease(r *Record) (string, bool) {
	return majorMinor(r, "system_bios_major_release", "system_bios_minor_release")
}

// EmbeddedControllerFirmwareRelease returns the "major.minor" embedded
// controller firmware release of a type 0 record.
func EmbeddedControllerFirmwareRelease(r *Record) (string, bool) {
	return majorMinor(r, "embedded_ctrl_firmware_major_release", "embedded_ctrl_firmware_minor_release")
}

func majorMinor(r *Record, majorField, minorField string) (string, bool) {
	major, ok := r.Uint8(majorField)
	if !ok {
		return "", false
	}

	minor, ok := r.Uint8(minorField)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("%d.%d", major, minor), true
}

// SystemUUID returns the UUID of a type 1 record.  SMBIOS 2.6 changed the
// encoding of the first three groups from big endian to little endian;
// the record's decode version selects the interpretation.
func SystemUUID(r *Record) (uuid.UUID, bool) {
	b, ok := r.Uint8s("uuid")
	if !ok || len(b) != 16 {
		return uuid.UUID{}, false
	}

	if r.Version().AtLeast(2, 6) {
		b = swapUUIDBytes(b)
	}

	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.UUID{}, false
	}

	return u, true
}

// swapUUIDBytes converts the mixed-endian SMBIOS UUID layout to the
// big-endian wire layout: the first three groups are byte swapped, the
// final two are already big endian.
func swapUUIDBytes(b []byte) []byte {
	out := make([]byte, 16)
	out[0], out[1], out[2], out[3] = b[3], b[2], b[1], b[0]
	out[4], out[5] = b[5], b[4]
	out[6], out[7] = b[7], b[6]
	copy(out[8:], b[8:])

	return out
}

// ChassisLock reports whether a type 3 record declares a chassis lock, from
// bit 7 of the chassis type byte.
func ChassisLock(r *Record) (present, ok bool) {
	t, ok := r.Uint8("chassis_type")
	if !ok {
		return false, false
	}

	return t&0x80 != 0, true
}

// ProcessorFamilyString labels the processor family of a type 4 record.
// Family code 0xFE redirects to the two byte family 2 field, which holds
// families beyond the one byte code space.
func ProcessorFamilyString(r *Record) (string, error) {
	f, ok := r.Uint8("processor_family")
	if !ok {
		return "", &UnmappedValueError{}
	}

	if f == 0xFE {
		f2, ok := r.Uint16("processor_family2")
		if !ok {
			return "", &UnmappedValueError{Value: uint64(f)}
		}

		return ProcessorFamily2String(f2)
	}

	return lookup(processorFamilies, uint64(f))
}

// ProcessorVoltageString formats a type 4 voltage byte.  With bit 7 set
// the low bits hold the current voltage in tenths of a volt; with bit 7
// clear they are a legacy bit field of supported voltages.
func ProcessorVoltageString(v uint8) string {
	if v&0x80 != 0 {
		return fmt.Sprintf("%.1f V", float64(v&0x7F)/10)
	}

	vols := []string{"5.0 V", "3.3 V", "2.9 V"}
	supported := FlagStrings(uint64(v&0x07), vols)
	return joinStrings(supported, " ")
}

func joinStrings(ss []string, sep string) string {
	var out string
	for i, s := range ss {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}

// CoreCount returns the core count of a type 4 record.  The one byte
// count saturates at 0xFF; the two byte core count 2 field then carries
// the value.
func CoreCount(r *Record) (uint16, bool) {
	return countMixed(r, "core_count", "core_count2")
}

// CoreEnabled returns the enabled core count of a type 4 record, with the
// same saturation rule as CoreCount.
func CoreEnabled(r *Record) (uint16, bool) {
	return countMixed(r, "core_enabled", "core_enabled2")
}

// ThreadCount returns the thread count of a type 4 record, with the same
// saturation rule as CoreCount.
func ThreadCount(r *Record) (uint16, bool) {
	return countMixed(r, "thread_count", "thread_count2")
}

func countMixed(r *Record, narrow, wide string) (uint16, bool) {
	c1, ok := r.Uint8(narrow)
	if !ok {
		return 0, false
	}

	if c1 == 0xFF {
		if c2, ok := r.Uint16(wide); ok {
			return c2, true
		}
	}

	return uint16(c1), true
}

// MaximumMemoryModuleSizeMB returns the largest memory module size a
// type 5 memory controller supports, in megabytes.  The field holds the
// size as a power of two.
func MaximumMemoryModuleSizeMB(r *Record) (uint32, bool) {
	s, ok := r.Uint8("maximum_memory_module_size")
	if !ok || s > 31 {
		return 0, false
	}

	return 1 << s, true
}

// MaximumMemoryTotalSizeMB returns the largest total memory a type 5
// memory controller supports across all of its slots, in megabytes.
func MaximumMemoryTotalSizeMB(r *Record) (uint32, bool) {
	module, ok := MaximumMemoryModuleSizeMB(r)
	if !ok {
		return 0, false
	}

	count, ok := r.Uint8("associated_memory_slot_count")
	if !ok {
		return 0, false
	}

	return module * uint32(count), true
}

// An OnBoardDevice is one decoded device entry of a type 10 structure.
type OnBoardDevice struct {
	Enabled     bool
	Type        string
	Description string
}

// OnBoardDevices returns the decoded device entries of a type 10 record.
func OnBoardDevices(r *Record) ([]OnBoardDevice, bool) {
	recs, ok := r.Records("devices")
	if !ok {
		return nil, false
	}

	devices := make([]OnBoardDevice, 0, len(recs))
	for _, rec := range recs {
		t, ok := rec.Uint8("device_type")
		if !ok {
			continue
		}

		typ, err := OnBoardDeviceTypeString(t)
		if err != nil {
			typ = "Unknown"
		}

		desc, _ := rec.String("description")

		devices = append(devices, OnBoardDevice{
			Enabled:     t&0x80 != 0,
			Type:        typ,
			Description: desc,
		})
	}

	return devices, true
}

// MemoryDeviceSizeBytes returns the size of a type 17 memory device in
// bytes.  Size 0 means the slot is empty; 0x7FFF redirects to the 32-bit
// extended size field, in megabytes.  Otherwise bit 15 of the size field
// selects kilobyte or megabyte units.
//
// See DSP0134 3.1.1, section 7.18.5.
func MemoryDeviceSizeBytes(r *Record) (uint64, bool) {
	size, ok := r.Uint16("size")
	if !ok {
		return 0, false
	}

	if size == 0x7FFF {
		ext, ok := r.Uint32("extended_size")
		if !ok {
			return 0, false
		}

		return uint64(ext&0x7FFFFFFF) * 1024 * 1024, true
	}

	if size&0x8000 != 0 {
		// Kilobyte granularity.
		return uint64(size&0x7FFF) * 1024, true
	}

	return uint64(size) * 1024 * 1024, true
}

// SystemResetEnabled reports whether a type 23 record declares system
// reset enabled, from bit 0 of the capabilities byte.
func SystemResetEnabled(r *Record) (enabled, ok bool) {
	caps, ok := r.Uint8("capabilities")
	if !ok {
		return false, false
	}

	return caps&0x01 != 0, true
}

// SystemResetBootOption labels the boot option of a type 23 record's
// capabilities byte.
func SystemResetBootOption(r *Record) (string, error) {
	caps, ok := r.Uint8("capabilities")
	if !ok {
		return "", &UnmappedValueError{}
	}

	return resetBootOption(caps >> 1)
}

// SystemResetBootOptionOnLimit labels the boot option applied once the
// reset limit of a type 23 record is reached.
func SystemResetBootOptionOnLimit(r *Record) (string, error) {
	caps, ok := r.Uint8("capabilities")
	if !ok {
		return "", &UnmappedValueError{}
	}

	return resetBootOption(caps >> 3)
}

// SystemResetWatchdog reports whether a type 23 record declares a watchdog
// timer, from bit 5 of the capabilities byte.
func SystemResetWatchdog(r *Record) (present, ok bool) {
	caps, ok := r.Uint8("capabilities")
	if !ok {
		return false, false
	}

	return caps&0x20 != 0, true
}

func resetBootOption(v uint8) (string, error) {
	options := map[uint64]string{
		0x01: "Operating system",
		0x02: "System utilities",
		0x03: "Do not reboot",
	}

	return lookup(options, uint64(v&0x03))
}

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

// An UnmappedValueError indicates a coded field value for which the SMBIOS
// specification assigns no meaning.
type UnmappedValueError struct {
	Value uint64
}

func (e *UnmappedValueError) Error() string {
	return fmt.Sprintf("unknown code %#02X", e.Value)
}

// lookup resolves a coded value against a label table.
func lookup(table map[uint64]string, v uint64) (string, error) {
	s, ok := table[v]
	if !ok {
		return "", &UnmappedValueError{Value: v}
	}

	return s, nil
}

// FlagStrings expands a bit field into the labels of its set bits.  Bits
// whose label is empty are reserved and never reported, set or not.
func FlagStrings(value uint64, names []string) []string {
	var out []string
	for i, name := range names {
		if name == "" {
			continue
		}
		if value&(1<<uint(i)) != 0 {
			out = append(out, name)
		}
	}

	return out
}

// biosCharacteristics labels the type 0 BIOS characteristics bit field.
// Bits 0 through 2 are reserved.
var biosCharacteristics = []string{
	"",
	"",
	"",
	"BIOS characteristics not supported",
	"ISA is supported",
	"MCA is supported",
	"EISA is supported",
	"PCI is supported",
	"PC Card (PCMCIA) is supported",
	"PNP is supported",
	"APM is supported",
	"BIOS is upgradeable",
	"BIOS shadowing is allowed",
	"VLB is supported",
	"ESCD support is available",
	"Boot from CD is supported",
	"Selectable boot is supported",
	"BIOS ROM is socketed",
	"Boot from PC Card (PCMCIA) is supported",
	"EDD is supported",
	"Japanese floppy for NEC 9800 1.2 MB is supported (int 13h)",
	"Japanese floppy for Toshiba 1.2 MB is supported (int 13h)",
	"5.25\"/360 kB floppy services are supported (int 13h)",
	"5.25\"/1.2 MB floppy services are supported (int 13h)",
	"3.5\"/720 kB floppy services are supported (int 13h)",
	"3.5\"/2.88 MB floppy services are supported (int 13h)",
	"Print screen service is supported (int 5h)",
	"8042 keyboard services are supported (int 9h)",
	"Serial services are supported (int 14h)",
	"Printer services are supported (int 17h)",
	"CGA/mono video services are supported (int 10h)",
	"NEC PC-98",
}

// biosCharacteristicsExt1 labels the first BIOS characteristics extension
// byte.
var biosCharacteristicsExt1 = []string{
	"ACPI is supported",
	"USB legacy is supported",
	"AGP is supported",
	"I2O boot is supported",
	"LS-120 boot is supported",
	"ATAPI Zip drive boot is supported",
	"IEEE 1394 boot is supported",
	"Smart battery is supported",
}

// biosCharacteristicsExt2 labels the second BIOS characteristics extension
// byte.
var biosCharacteristicsExt2 = []string{
	"BIOS boot specification is supported",
	"Function key-initiated network boot is supported",
	"Targeted content distribution is supported",
	"UEFI is supported",
	"System is a virtual machine",
	"Manufacturing mode is supported",
	"Manufacturing mode is enabled",
}

// BIOSCharacteristicsStrings expands the type 0 BIOS characteristics
// bit field into labels.
func BIOSCharacteristicsStrings(value uint64) []string {
	return FlagStrings(value, biosCharacteristics)
}

// BIOSCharacteristicsExtStrings expands the two BIOS characteristics
// extension bytes into labels, in byte order.
func BIOSCharacteristicsExtStrings(ext []uint8) []string {
	var out []string
	if len(ext) > 0 {
		out = append(out, FlagStrings(uint64(ext[0]), biosCharacteristicsExt1)...)
	}
	if len(ext) > 1 {
		out = append(out, FlagStrings(uint64(ext[1]), biosCharacteristicsExt2)...)
	}

	return out
}

var wakeupTypes = map[uint64]string{
	0: "Reserved",
	1: "Other",
	2: "Unknown",
	3: "APM Timer",
	4: "Modem Ring",
	5: "LAN Remote",
	6: "Power Switch",
	7: "PCI PME#",
	8: "AC Power Restored",
}

// WakeupTypeString labels a type 1 wake-up type code.
func WakeupTypeString(v uint8) (string, error) {
	return lookup(wakeupTypes, uint64(v))
}

// baseboardFeatures labels the type 2 feature flags byte.  Bits 5 through
// 7 are reserved.
var baseboardFeatures = []string{
	"Board is a hosting board",
	"Board requires at least one daughter board",
	"Board is removable",
	"Board is replaceable",
	"Board is hot swappable",
	"",
	"",
}

// BaseboardFeatureStrings expands the type 2 feature flags byte into
// labels.
func BaseboardFeatureStrings(value uint8) []string {
	return FlagStrings(uint64(value), baseboardFeatures)
}

var boardTypes = map[uint64]string{
	1:  "Unknown",
	2:  "Other",
	3:  "Server Blade",
	4:  "Connectivity Switch",
	5:  "System Management Module",
	6:  "Processor Module",
	7:  "I/O Module",
	8:  "Memory Module",
	9:  "Daughter Board",
	10: "Motherboard",
	11: "Processor+Memory Module",
	12: "Processor+I/O Module",
	13: "Interconnect Board",
}

// BoardTypeString labels a type 2 board type code.
func BoardTypeString(v uint8) (string, error) {
	return lookup(boardTypes, uint64(v))
}

var chassisTypes = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Desktop",
	0x04: "Low Profile Desktop",
	0x05: "Pizza Box",
	0x06: "Mini Tower",
	0x07: "Tower",
	0x08: "Portable",
	0x09: "Laptop",
	0x0A: "Notebook",
	0x0B: "Hand Held",
	0x0C: "Docking Station",
	0x0D: "All In One",
	0x0E: "Sub Notebook",
	0x0F: "Space-saving",
	0x10: "Lunch Box",
	0x11: "Main Server Chassis",
	0x12: "Expansion Chassis",
	0x13: "SubChassis",
	0x14: "Bus Expansion Chassis",
	0x15: "Peripheral Chassis",
	0x16: "RAID Chassis",
	0x17: "Rack Mount Chassis",
	0x18: "Sealed-case PC",
	0x19: "Multi-system chassis",
	0x1A: "Compact PCI",
	0x1B: "Advanced TCA",
	0x1C: "Blade",
	0x1D: "Blade Enclosure",
	0x1E: "Tablet",
	0x1F: "Convertible",
	0x20: "Detachable",
	0x21: "IoT Gateway",
	0x22: "Embedded PC",
	0x23: "Mini PC",
	0x24: "Stick PC",
}

// ChassisTypeString labels a type 3 chassis type code.  Bit 7 carries the
// lock flag; it is masked off before lookup.
func ChassisTypeString(v uint8) (string, error) {
	return lookup(chassisTypes, uint64(v&0x3F))
}

var chassisStates = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Safe",
	0x04: "Warning",
	0x05: "Critical",
	0x06: "Non-recoverable",
}

// ChassisStateString labels a type 3 boot-up, power-supply or thermal
// state code.
func ChassisStateString(v uint8) (string, error) {
	return lookup(chassisStates, uint64(v))
}

var chassisSecurityStatuses = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "None",
	0x04: "External interface locked out",
	0x05: "External interface enabled",
}

// ChassisSecurityStatusString labels a type 3 security status code.
func ChassisSecurityStatusString(v uint8) (string, error) {
	return lookup(chassisSecurityStatuses, uint64(v))
}

var processorTypes = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Central Processor",
	0x04: "Central Processor",
	0x05: "DSP Processor",
	0x06: "Video Processor",
}

// ProcessorTypeString labels a type 4 processor type code.
func ProcessorTypeString(v uint8) (string, error) {
	return lookup(processorTypes, uint64(v))
}

var processorFamilies = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "8086",
	0x04: "80286",
	0x05: "Intel386 processor",
	0x06: "Intel486 processor",
	0x07: "8087",
	0x08: "80287",
	0x09: "80387",
	0x0A: "80487",
	0x0B: "Intel Pentium processor",
	0x0C: "Pentium Pro processor",
	0x0D: "Pentium II processor",
	0x0E: "Pentium processor with MMX technology",
	0x0F: "Intel Celeron processor",
	0x10: "Pentium II Xeon processor",
	0x11: "Pentium III processor",
	0x12: "M1 Family",
	0x13: "M2 Family",
	0x14: "Intel Celeron M processor",
	0x15: "Intel Pentium 4 HT processor",
	0x18: "AMD Duron Processor Family",
	0x19: "K5 Family",
	0x1A: "K6 Family",
	0x1B: "K6-2",
	0x1C: "K6-3",
	0x1D: "AMD Athlon Processor Family",
	0x1E: "AMD29000 Family",
	0x1F: "K6-2+",
	0x20: "Power PC Family",
	0x21: "Power PC 601",
	0x22: "Power PC 603",
	0x23: "Power PC 603+",
	0x24: "Power PC 604",
	0x25: "Power PC 620",
	0x26: "Power PC x704",
	0x27: "Power PC 750",
	0x28: "Intel Core Duo processor",
	0x29: "Intel Core Duo mobile processor",
	0x2A: "Intel Core Solo mobile processor",
	0x2B: "Intel Atom processor",
	0x2C: "Intel Core M processor",
	0x2D: "Intel Core m3 processor",
	0x2E: "Intel Core m5 processor",
	0x2F: "Intel Core m7 processor",
	0x30: "Alpha Family",
	0x31: "Alpha 21064",
	0x32: "Alpha 21066",
	0x33: "Alpha 21164",
	0x34: "Alpha 21164PC",
	0x35: "Alpha 21164a",
	0x36: "Alpha 21264",
	0x37: "Alpha 21364",
	0x38: "AMD Turion II Ultra Dual-Core Mobile M Processor Family",
	0x39: "AMD Turion II Dual-Core Mobile M Processor Family",
	0x3A: "AMD Athlon II Dual-Core M Processor Family",
	0x3B: "AMD Opteron 6100 Series Processor",
	0x3C: "AMD Opteron 4100 Series Processor",
	0x3D: "AMD Opteron 6200 Series Processor",
	0x3E: "AMD Opteron 4200 Series Processor",
	0x3F: "AMD FX Series Processor",
	0x40: "MIPS Family",
	0x41: "MIPS R4000",
	0x42: "MIPS R4200",
	0x43: "MIPS R4400",
	0x44: "MIPS R4600",
	0x45: "MIPS R10000",
	0x46: "AMD C-Series Processor",
	0x47: "AMD E-Series Processor",
	0x48: "AMD A-Series Processor",
	0x49: "AMD G-Series Processor",
	0x4A: "AMD Z-Series Processor",
	0x4B: "AMD R-Series Processor",
	0x4C: "AMD Opteron 4300 Series Processor",
	0x4D: "AMD Opteron 6300 Series Processor",
	0x4E: "AMD Opteron 3300 Series Processor",
	0x4F: "AMD FirePro Series Processor",
	0x50: "SPARC Family",
	0x51: "SuperSPARC",
	0x52: "microSPARC II",
	0x53: "microSPARC IIep",
	0x54: "UltraSPARC",
	0x55: "UltraSPARC II",
	0x56: "UltraSPARC Iii",
	0x57: "UltraSPARC III",
	0x58: "UltraSPARC IIIi",
	0x60: "68040 Family",
	0x61: "68xxx",
	0x62: "68000",
	0x63: "68010",
	0x64: "68020",
	0x65: "68030",
	0x66: "AMD Athlon X4 Quad-Core Processor Family",
	0x67: "AMD Opteron X1000 Series Processor",
	0x68: "AMD Opteron X2000 Series APU",
	0x69: "AMD Opteron A-Series Processor",
	0x6A: "AMD Opteron X3000 Series APU",
	0x6B: "AMD Zen Processor Family",
	0x70: "Hobbit Family",
	0x78: "Crusoe TM5000 Family",
	0x79: "Crusoe TM3000 Family",
	0x7A: "Efficeon TM8000 Family",
	0x80: "Weitek",
	0x82: "Itanium processor",
	0x83: "AMD Athlon 64 Processor Family",
	0x84: "AMD Opteron Processor Family",
	0x85: "AMD Sempron Processor Family",
	0x86: "AMD Turion 64 Mobile Technology",
	0x87: "Dual-Core AMD Opteron Processor Family",
	0x88: "AMD Athlon 64 X2 Dual-Core Processor Family",
	0x89: "AMD Turion 64 X2 Mobile Technology",
	0x8A: "Quad-Core AMD Opteron Processor Family",
	0x8B: "Third-Generation AMD Opteron Processor Family",
	0x8C: "AMD Phenom FX Quad-Core Processor Family",
	0x8D: "AMD Phenom X4 Quad-Core Processor Family",
	0x8E: "AMD Phenom X2 Dual-Core Processor Family",
	0x8F: "AMD Athlon X2 Dual-Core Processor Family",
	0x90: "PA-RISC Family",
	0x91: "PA-RISC 8500",
	0x92: "PA-RISC 8000",
	0x93: "PA-RISC 7300LC",
	0x94: "PA-RISC 7200",
	0x95: "PA-RISC 7100LC",
	0x96: "PA-RISC 7100",
	0xA0: "V30 Family",
	0xA1: "Quad-Core Intel Xeon processor 3200 Series",
	0xA2: "Dual-Core Intel Xeon processor 3000 Series",
	0xA3: "Quad-Core Intel Xeon processor 5300 Series",
	0xA4: "Dual-Core Intel Xeon processor 5100 Series",
	0xA5: "Dual-Core Intel Xeon processor 5000 Series",
	0xA6: "Dual-Core Intel Xeon processor LV",
	0xA7: "Dual-Core Intel Xeon processor ULV",
	0xA8: "Dual-Core Intel Xeon processor 7100 Series",
	0xA9: "Quad-Core Intel Xeon processor 5400 Series",
	0xAA: "Quad-Core Intel Xeon processor",
	0xAB: "Dual-Core Intel Xeon processor 5200 Series",
	0xAC: "Dual-Core Intel Xeon processor 7200 Series",
	0xAD: "Quad-Core Intel Xeon processor 7300 Series",
	0xAE: "Quad-Core Intel Xeon processor 7400 Series",
	0xAF: "Multi-Core Intel Xeon processor 7400 Series",
	0xB0: "Pentium III Xeon processor",
	0xB1: "Pentium III Processor with Intel SpeedStep Technology",
	0xB2: "Pentium 4 Processor",
	0xB3: "Intel Xeon processor",
	0xB4: "AS400 Family",
	0xB5: "Intel Xeon processor MP",
	0xB6: "AMD Athlon XP Processor Family",
	0xB7: "AMD Athlon MP Processor Family",
	0xB8: "Intel Itanium 2 processor",
	0xB9: "Intel Pentium M processor",
	0xBA: "Intel Celeron D processor",
	0xBB: "Intel Pentium D processor",
	0xBC: "Intel Pentium Processor Extreme Edition",
	0xBD: "Intel Core Solo Processor",
	0xBF: "Intel Core 2 Duo Processor",
	0xC0: "Intel Core 2 Solo processor",
	0xC1: "Intel Core 2 Extreme processor",
	0xC2: "Intel Core 2 Quad processor",
	0xC3: "Intel Core 2 Extreme mobile processor",
	0xC4: "Intel Core 2 Duo mobile processor",
	0xC5: "Intel Core 2 Solo mobile processor",
	0xC6: "Intel Core i7 processor",
	0xC7: "Dual-Core Intel Celeron processor",
	0xC8: "IBM390 Family",
	0xC9: "G4",
	0xCA: "G5",
	0xCB: "ESA/390 G6",
	0xCC: "z/Architecture base",
	0xCD: "Intel Core i5 processor",
	0xCE: "Intel Core i3 processor",
	0xCF: "Intel Core i9 processor",
	0xD2: "VIA C7-M Processor Family",
	0xD3: "VIA C7-D Processor Family",
	0xD4: "VIA C7 Processor Family",
	0xD5: "VIA Eden Processor Family",
	0xD6: "Multi-Core Intel Xeon processor",
	0xD7: "Dual-Core Intel Xeon processor 3xxx Series",
	0xD8: "Quad-Core Intel Xeon processor 3xxx Series",
	0xD9: "VIA Nano Processor Family",
	0xDA: "Dual-Core Intel Xeon processor 5xxx Series",
	0xDB: "Quad-Core Intel Xeon processor 5xxx Series",
	0xDD: "Dual-Core Intel Xeon processor 7xxx Series",
	0xDE: "Quad-Core Intel Xeon processor 7xxx Series",
	0xDF: "Multi-Core Intel Xeon processor 7xxx Series",
	0xE0: "Multi-Core Intel Xeon processor 3400 Series",
	0xE4: "AMD Opteron 3000 Series Processor",
	0xE5: "AMD Sempron II Processor",
	0xE6: "Embedded AMD Opteron Quad-Core Processor Family",
	0xE7: "AMD Phenom Triple-Core Processor Family",
	0xE8: "AMD Turion Ultra Dual-Core Mobile Processor Family",
	0xE9: "AMD Turion Dual-Core Mobile Processor Family",
	0xEA: "AMD Athlon Dual-Core Processor Family",
	0xEB: "AMD Sempron SI Processor Family",
	0xEC: "AMD Phenom II Processor Family",
	0xED: "AMD Athlon II Processor Family",
	0xEE: "Six-Core AMD Opteron Processor Family",
	0xEF: "AMD Sempron M Processor Family",
	0xFA: "i860",
	0xFB: "i960",
	0xFF: "Reserved",
}

var processorFamilies2 = map[uint64]string{
	0x0100: "ARMv7",
	0x0101: "ARMv8",
	0x0102: "ARMv9",
	0x0104: "SH-3",
	0x0105: "SH-4",
	0x0118: "ARM",
	0x0119: "StrongARM",
	0x012C: "6x86",
	0x012D: "MediaGX",
	0x012E: "MII",
	0x0140: "WinChip",
	0x015E: "DSP",
	0x01F4: "Video Processor",
	0x0200: "RISC-V RV32",
	0x0201: "RISC-V RV64",
	0x0202: "RISC-V RV128",
	0x0258: "LoongArch",
	0x0259: "Loongson 1 Processor Family",
	0x025A: "Loongson 2 Processor Family",
	0x025B: "Loongson 3 Processor Family",
	0x025C: "Loongson 2K Processor Family",
	0x025D: "Loongson 3A Processor Family",
	0x025E: "Loongson 3B Processor Family",
	0x025F: "Loongson 3C Processor Family",
	0x0260: "Loongson 3D Processor Family",
	0x0261: "Loongson 3E Processor Family",
	0x0262: "Dual-Core Loongson 2K Processor 2xxx Series",
	0x026C: "Quad-Core Loongson 3A Processor 5xxx Series",
	0x026D: "Multi-Core Loongson 3A Processor 5xxx Series",
	0x026E: "Quad-Core Loongson 3B Processor 5xxx Series",
	0x026F: "Multi-Core Loongson 3B Processor 5xxx Series",
	0x0270: "Multi-Core Loongson 3C Processor 5xxx Series",
	0x0271: "Multi-Core Loongson 3D Processor 5xxx Series",
}

// ProcessorFamily2String labels a type 4 processor family 2 code.
func ProcessorFamily2String(v uint16) (string, error) {
	return lookup(processorFamilies2, uint64(v))
}

var processorUpgrades = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Daughter Board",
	0x04: "ZIF Socket",
	0x05: "Replaceable Piggy Back",
	0x06: "None",
	0x07: "LIF Socket",
	0x08: "Slot 1",
	0x09: "Slot 2",
	0x0A: "370-pin socket",
	0x0B: "Slot A",
	0x0C: "Slot M",
	0x0D: "Socket 423",
	0x0E: "Socket A (Socket 462)",
	0x0F: "Socket 478",
	0x10: "Socket 754",
	0x11: "Socket 940",
	0x12: "Socket 939",
	0x13: "Socket mPGA604",
	0x14: "Socket LGA771",
	0x15: "Socket LGA775",
	0x16: "Socket S1",
	0x17: "Socket AM2",
	0x18: "Socket F (1207)",
	0x19: "Socket LGA1366",
	0x1A: "Socket G34",
	0x1B: "Socket AM3",
	0x1C: "Socket C32",
	0x1D: "Socket LGA1156",
	0x1E: "Socket LGA1567",
	0x1F: "Socket PGA988A",
	0x20: "Socket BGA1288",
	0x21: "Socket rPGA988B",
	0x22: "Socket BGA1023",
	0x23: "Socket BGA1224",
	0x24: "Socket LGA1155",
	0x25: "Socket LGA1356",
	0x26: "Socket LGA2011",
	0x27: "Socket FS1",
	0x28: "Socket FS2",
	0x29: "Socket FM1",
	0x2A: "Socket FM2",
	0x2B: "Socket LGA2011-3",
	0x2C: "Socket LGA1356-3",
	0x2D: "Socket LGA1150",
	0x2E: "Socket BGA1168",
	0x2F: "Socket BGA1234",
	0x30: "Socket BGA1364",
	0x31: "Socket AM4",
	0x32: "Socket LGA1151",
	0x33: "Socket BGA1356",
	0x34: "Socket BGA1440",
	0x35: "Socket BGA1515",
	0x36: "Socket LGA3647-1",
	0x37: "Socket SP3",
	0x38: "Socket SP3r2",
	0x39: "Socket LGA2066",
	0x3A: "Socket BGA1392",
	0x3B: "Socket BGA1510",
	0x3C: "Socket BGA1528",
	0x3D: "Socket LGA4189",
	0x3E: "Socket LGA1200",
	0x3F: "Socket LGA4677",
	0x40: "Socket LGA1700",
	0x41: "Socket BGA1744",
	0x42: "Socket BGA1781",
	0x43: "Socket BGA1211",
	0x44: "Socket BGA2422",
	0x45: "Socket LGA1211",
	0x46: "Socket LGA2422",
	0x47: "Socket LGA5773",
	0x48: "Socket BGA5773",
}

// ProcessorUpgradeString labels a type 4 processor upgrade code.
func ProcessorUpgradeString(v uint8) (string, error) {
	return lookup(processorUpgrades, uint64(v))
}

// processorCharacteristics labels the type 4 processor characteristics
// bit field.
var processorCharacteristics = []string{
	"Reserved",
	"Unknown",
	"64-bit Capable",
	"Multi-Core",
	"Hardware Thread",
	"Execute Protection",
	"Enhanced Virtualization",
	"Power/Performance Control",
	"128-bit Capable",
	"Arm64 SoC ID",
}

// ProcessorCharacteristicsStrings expands the type 4 processor
// characteristics bit field into labels.
func ProcessorCharacteristicsStrings(value uint16) []string {
	return FlagStrings(uint64(value), processorCharacteristics)
}

var processorStatuses = map[uint64]string{
	0x00: "Unknown",
	0x01: "Enabled",
	0x02: "Disabled by User",
	0x03: "Disabled By BIOS",
	0x04: "Idle",
	0x07: "Other",
}

// ProcessorStatusString labels a type 4 status byte.  A socket without
// its CPU populated bit reports "Unpopulated" regardless of the status
// code bits.
func ProcessorStatusString(v uint8) (string, error) {
	if v&0x40 == 0 {
		return "Unpopulated", nil
	}

	return lookup(processorStatuses, uint64(v&0x0F))
}

var memoryErrorDetectingMethods = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "None",
	0x04: "8-bit Parity",
	0x05: "32-bit ECC",
	0x06: "64-bit ECC",
	0x07: "128-bit ECC",
	0x08: "CRC",
}

// MemoryErrorDetectingMethodString labels a type 5 error detecting method
// code.
func MemoryErrorDetectingMethodString(v uint8) (string, error) {
	return lookup(memoryErrorDetectingMethods, uint64(v))
}

// errorCorrectingCapabilities labels the type 5 error correcting
// capability bit field.
var errorCorrectingCapabilities = []string{
	"Other",
	"Unknown",
	"None",
	"Single-Bit Error Correcting",
	"Double-Bit Error Correcting",
	"Error Scrubbing",
}

// ErrorCorrectingCapabilityStrings expands a type 5 error correcting
// capability bit field into labels.
func ErrorCorrectingCapabilityStrings(value uint8) []string {
	return FlagStrings(uint64(value), errorCorrectingCapabilities)
}

var memoryInterleaves = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "One-Way Interleave",
	0x04: "Two-Way Interleave",
	0x05: "Four-Way Interleave",
	0x06: "Eight-Way Interleave",
	0x07: "Sixteen-Way Interleave",
}

// MemoryInterleaveString labels a type 5 interleave support code.
func MemoryInterleaveString(v uint8) (string, error) {
	return lookup(memoryInterleaves, uint64(v))
}

// memoryTypes labels the memory type bit field shared by types 5 and 6.
var memoryTypes = []string{
	"Other",
	"Unknown",
	"Standard",
	"Fast Page Mode",
	"EDO",
	"Parity",
	"ECC",
	"SIMM",
	"DIMM",
	"Burst EDO",
	"SDRAM",
}

// MemoryTypeStrings expands a type 5 or type 6 memory type bit field into
// labels.
func MemoryTypeStrings(value uint16) []string {
	return FlagStrings(uint64(value), memoryTypes)
}

var portConnectorTypes = map[uint64]string{
	0x00: "None",
	0x01: "Centronics",
	0x02: "Mini Centronics",
	0x03: "Proprietary",
	0x04: "DB-25 pin male",
	0x05: "DB-25 pin female",
	0x06: "DB-15 pin male",
	0x07: "DB-15 pin female",
	0x08: "DB-9 pin male",
	0x09: "DB-9 pin female",
	0x0A: "RJ-11",
	0x0B: "RJ-45",
	0x0C: "50-pin MiniSCSI",
	0x0D: "Mini-DIN",
	0x0E: "Micro-DIN",
	0x0F: "PS/2",
	0x10: "Infrared",
	0x11: "HP-HIL",
	0x12: "Access Bus (USB)",
	0x13: "SSA SCSI",
	0x14: "Circular DIN-8 male",
	0x15: "Circular DIN-8 female",
	0x16: "On Board IDE",
	0x17: "On Board Floppy",
	0x18: "9-pin Dual Inline (pin 10 cut)",
	0x19: "25-pin Dual Inline (pin 26 cut)",
	0x1A: "50-pin Dual Inline",
	0x1B: "68-pin Dual Inline",
	0x1C: "On Board Sound Input from CD-ROM",
	0x1D: "Mini-Centronics Type-14",
	0x1E: "Mini-Centronics Type-26",
	0x1F: "Mini-jack (headphones)",
	0x20: "BNC",
	0x21: "1394",
	0x22: "SAS/SATA Plug Receptacle",
	0x23: "USB Type-C Receptacle",
	0xA0: "PC-98",
	0xA1: "PC-98Hireso",
	0xA2: "PC-H98",
	0xA3: "PC-98Note",
	0xA4: "PC-98Full",
	0xFF: "Other",
}

// PortConnectorTypeString labels a type 8 connector type code.
func PortConnectorTypeString(v uint8) (string, error) {
	return lookup(portConnectorTypes, uint64(v))
}

var portTypes = map[uint64]string{
	0x00: "None",
	0x01: "Parallel Port XT/AT Compatible",
	0x02: "Parallel Port PS/2",
	0x03: "Parallel Port ECP",
	0x04: "Parallel Port EPP",
	0x05: "Parallel Port ECP/EPP",
	0x06: "Serial Port XT/AT Compatible",
	0x07: "Serial Port 16450 Compatible",
	0x08: "Serial Port 16550 Compatible",
	0x09: "Serial Port 16550A Compatible",
	0x0A: "SCSI Port",
	0x0B: "MIDI Port",
	0x0C: "Joy Stick Port",
	0x0D: "Keyboard Port",
	0x0E: "Mouse Port",
	0x0F: "SSA SCSI",
	0x10: "USB",
	0x11: "FireWire (IEEE P1394)",
	0x12: "PCMCIA Type I",
	0x13: "PCMCIA Type II",
	0x14: "PCMCIA Type III",
	0x15: "Card bus",
	0x16: "Access Bus Port",
	0x17: "SCSI II",
	0x18: "SCSI Wide",
	0x19: "PC-98",
	0x1A: "PC-98-Hireso",
	0x1B: "PC-H98",
	0x1C: "Video Port",
	0x1D: "Audio Port",
	0x1E: "Modem Port",
	0x1F: "Network Port",
	0x20: "SATA",
	0x21: "SAS",
	0x22: "MFDP (Multi-Function Display Port)",
	0x23: "Thunderbolt",
	0xA0: "8251 Compatible",
	0xA1: "8251 FIFO Compatible",
	0xFF: "Other",
}

// PortTypeString labels a type 8 port type code.
func PortTypeString(v uint8) (string, error) {
	return lookup(portTypes, uint64(v))
}

var onBoardDeviceTypes = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Video",
	0x04: "SCSI Controller",
	0x05: "Ethernet",
	0x06: "Token Ring",
	0x07: "Sound",
	0x08: "PATA Controller",
	0x09: "SATA Controller",
	0x0A: "SAS Controller",
}

// OnBoardDeviceTypeString labels a type 10 device type code.  Bit 7
// carries the enabled flag; it is masked off before lookup.
func OnBoardDeviceTypeString(v uint8) (string, error) {
	return lookup(onBoardDeviceTypes, uint64(v&0x7F))
}

var memoryErrorTypes = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "OK",
	0x04: "Bad read",
	0x05: "Parity error",
	0x06: "Single-bit error",
	0x07: "Double-bit error",
	0x08: "Multi-bit error",
	0x09: "Nibble error",
	0x0A: "Checksum error",
	0x0B: "CRC error",
	0x0C: "Corrected single-bit error",
	0x0D: "Corrected error",
	0x0E: "Uncorrectable error",
}

// MemoryErrorTypeString labels a type 18 or 33 error type code.
func MemoryErrorTypeString(v uint8) (string, error) {
	return lookup(memoryErrorTypes, uint64(v))
}

var memoryErrorGranularities = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Device level",
	0x04: "Memory partition level",
}

// MemoryErrorGranularityString labels a type 18 or 33 error granularity
// code.
func MemoryErrorGranularityString(v uint8) (string, error) {
	return lookup(memoryErrorGranularities, uint64(v))
}

var memoryErrorOperations = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Read",
	0x04: "Write",
	0x05: "Partial write",
}

// MemoryErrorOperationString labels a type 18 or 33 error operation code.
func MemoryErrorOperationString(v uint8) (string, error) {
	return lookup(memoryErrorOperations, uint64(v))
}

var memoryDeviceFormFactors = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "SIMM",
	0x04: "SIP",
	0x05: "Chip",
	0x06: "DIP",
	0x07: "ZIP",
	0x08: "Proprietary Card",
	0x09: "DIMM",
	0x0A: "TSOP",
	0x0B: "Row of chips",
	0x0C: "RIMM",
	0x0D: "SODIMM",
	0x0E: "SRIMM",
	0x0F: "FB-DIMM",
	0x10: "Die",
}

// MemoryDeviceFormFactorString labels a type 17 form factor code.
func MemoryDeviceFormFactorString(v uint8) (string, error) {
	return lookup(memoryDeviceFormFactors, uint64(v))
}

var memoryDeviceTypes = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "DRAM",
	0x04: "EDRAM",
	0x05: "VRAM",
	0x06: "SRAM",
	0x07: "RAM",
	0x08: "ROM",
	0x09: "FLASH",
	0x0A: "EEPROM",
	0x0B: "FEPROM",
	0x0C: "EPROM",
	0x0D: "CDRAM",
	0x0E: "3DRAM",
	0x0F: "SDRAM",
	0x10: "SGRAM",
	0x11: "RDRAM",
	0x12: "DDR",
	0x13: "DDR2",
	0x14: "DDR2 FB-DIMM",
	0x18: "DDR3",
	0x19: "FBD2",
	0x1A: "DDR4",
	0x1B: "LPDDR",
	0x1C: "LPDDR2",
	0x1D: "LPDDR3",
	0x1E: "LPDDR4",
	0x1F: "Logical non-volatile device",
	0x20: "HBM",
	0x21: "HBM2",
	0x22: "DDR5",
	0x23: "LPDDR5",
}

// MemoryDeviceTypeString labels a type 17 memory type code.
func MemoryDeviceTypeString(v uint8) (string, error) {
	return lookup(memoryDeviceTypes, uint64(v))
}

var pointingDeviceTypes = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Mouse",
	0x04: "Track Ball",
	0x05: "Track Point",
	0x06: "Glide Point",
	0x07: "Touch Pad",
	0x08: "Touch Screen",
	0x09: "Optical Sensor",
}

// PointingDeviceTypeString labels a type 21 device type code.
func PointingDeviceTypeString(v uint8) (string, error) {
	return lookup(pointingDeviceTypes, uint64(v))
}

var pointingDeviceInterfaces = map[uint64]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Serial",
	0x04: "PS/2",
	0x05: "Infrared",
	0x06: "HP-HIL",
	0x07: "Bus mouse",
	0x08: "ADB (Apple Desktop Bus)",
	0xA0: "Bus mouse DB-9",
	0xA1: "Bus mouse micro-DIN",
	0xA2: "USB",
	0xA3: "I2C",
	0xA4: "SPI",
}

// PointingDeviceInterfaceString labels a type 21 interface code.
func PointingDeviceInterfaceString(v uint8) (string, error) {
	return lookup(pointingDeviceInterfaces, uint64(v))
}

// SystemBootStatusString labels the first byte of a type 32 boot status
// blob.  Codes 0x80 and above are split into vendor and product specific
// ranges rather than individual values.
func SystemBootStatusString(v uint8) (string, error) {
	switch {
	case v >= 0xC0:
		return "Product-specific implementations", nil
	case v >= 0x80:
		return "Vendor/OEM-specific implementations", nil
	}

	statuses := map[uint64]string{
		0x00: "No errors detected",
		0x01: "No bootable media",
		0x02: "Operating system failed to load",
		0x03: "Firmware-detected hardware failure",
		0x04: "Operating system-detected hardware failure",
		0x05: "User-requested boot",
		0x06: "System security violation",
		0x07: "Previously requested image",
		0x08: "System watchdog timer expired",
	}

	return lookup(statuses, uint64(v))
}

// BIOSLanguageFormatString labels the type 13 flags byte: bit 0 selects
// the abbreviated language format.
func BIOSLanguageFormatString(flags uint8) string {
	if flags&0x01 != 0 {
		return "Abbreviated"
	}

	return "Long"
}

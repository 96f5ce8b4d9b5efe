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

// A Header is a Structure's header.
type Header struct {
	Type   uint8
	Length uint8
	Handle uint16
}

// A Structure is one raw SMBIOS structure: its header, the formatted
// section, and the string-set trailing it.
type Structure struct {
	Header    Header
	Formatted []byte
	Strings   []string
}

// GetStringByIndex resolves a 1-based string-set index referenced from a
// structure's formatted section.  Index 0 means no string, and an index
// beyond the string-set resolves to nothing; both return ok == false.
func (s *Structure) GetStringByIndex(index uint8) (string, bool) {
	if index < 1 || int(index) > len(s.Strings) {
		return "", false
	}

	return s.Strings[index-1], true
}

// tableTypeNames maps structure types to the names assigned by the SMBIOS
// specification.  Pure constant data, built once at startup.
var tableTypeNames = map[uint8]string{
	0:   "BIOS Information",
	1:   "System Information",
	2:   "Baseboard Information",
	3:   "Chassis Information",
	4:   "Processor Information",
	5:   "Memory Controller Information",
	6:   "Memory Module Information",
	7:   "Cache Information",
	8:   "Port Connector Information",
	9:   "System Slots",
	10:  "On Board Devices Information",
	11:  "OEM Strings",
	12:  "System Configuration Options",
	13:  "BIOS Language Information",
	14:  "Group Associations",
	15:  "System Event Log",
	16:  "Physical Memory Array",
	17:  "Memory Device",
	18:  "32-bit Memory Error Information",
	19:  "Memory Array Mapped Address",
	20:  "Memory Device Mapped Address",
	21:  "Built-in Pointing Device",
	22:  "Portable Battery",
	23:  "System Reset",
	24:  "Hardware Security",
	25:  "System Power Controls",
	26:  "Voltage Probe",
	27:  "Cooling Device",
	28:  "Temperature Probe",
	29:  "Electrical Current Probe",
	30:  "Out of Band Remote Access",
	31:  "Boot Integrity Service Entry Point",
	32:  "System Boot Information",
	33:  "64-bit Memory Error Information",
	34:  "Management Device",
	35:  "Management Device Component",
	36:  "Management Device Threshold Data",
	37:  "Memory Channel",
	38:  "IPMI Device Information",
	39:  "System Power Supply",
	40:  "Additional Information",
	41:  "Onboard Devices Extended Information",
	42:  "Management Controller Host Interface",
	43:  "TPM Device",
	44:  "Processor Additional Information",
	45:  "Firmware Inventory Information",
	46:  "String Property",
	126: "Inactive",
	127: "End of Table",
}

// TableTypeName returns the specification name for a structure type, or
// "Unknown" for types the specification does not name.
func TableTypeName(typ uint8) string {
	name, ok := tableTypeNames[typ]
	if !ok {
		return "Unknown"
	}

	return name
}

// Copyright 2017 DigitalOcean.
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

//+build linux

package smbios

import (
	"io"
	"os"
)

// sysfs locations for SMBIOS information.
const (
	sysfsDMI        = "/sys/firmware/dmi/tables/DMI"
	sysfsEntryPoint = "/sys/firmware/dmi/tables/smbios_entry_point"
)

// Legacy BIOS address range searched for an entry point when sysfs is
// unavailable.
const (
	devMem      = "/dev/mem"
	devMemStart = 0xf0000
	devMemEnd   = 0x100000
)

// stream opens the SMBIOS entry point and an SMBIOS structure stream.
func stream() (io.ReadCloser, EntryPoint, error) {
	// First, check for the sysfs location present in modern kernels.
	_, err := os.Stat(sysfsEntryPoint)
	switch {
	case err == nil:
		return sysfsStream()
	case os.IsNotExist(err):
		// Fall back to scanning the legacy BIOS area of /dev/mem.
		return devMemStream()
	default:
		return nil, nil, err
	}
}

// devMemStream reads the SMBIOS entry point and structure stream from
// raw memory via /dev/mem, for kernels without the sysfs DMI interface.
func devMemStream() (io.ReadCloser, EntryPoint, error) {
	mem, err := os.Open(devMem)
	if err != nil {
		return nil, nil, err
	}
	defer mem.Close()

	return memoryStream(mem, devMemStart, devMemEnd)
}

// sysfsStream reads the SMBIOS entry point and structure stream from
// the modern sysfs locations.
func sysfsStream() (io.ReadCloser, EntryPoint, error) {
	epf, err := os.Open(sysfsEntryPoint)
	if err != nil {
		return nil, nil, err
	}
	defer epf.Close()

	ep, err := ParseEntryPoint(epf)
	if err != nil {
		return nil, nil, err
	}

	sf, err := os.Open(sysfsDMI)
	if err != nil {
		return nil, nil, err
	}

	return sf, ep, nil
}

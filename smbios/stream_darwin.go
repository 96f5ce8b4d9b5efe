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

//go:build darwin
// +build darwin

package smbios

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ioregProperties extracts the hex-encoded SMBIOS-EPS and SMBIOS property
// values from ioreg output for the AppleSMBIOS service.
func ioregProperties(lines string) (eps, table string, err error) {
	for _, line := range strings.Split(lines, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		// Values are angle-bracketed hex blobs.
		value = strings.Trim(strings.TrimSpace(value), "<>")

		switch strings.TrimSpace(key) {
		case `"SMBIOS-EPS"`:
			eps = value
		case `"SMBIOS"`:
			table = value
		}
	}

	if eps == "" || table == "" {
		return "", "", fmt.Errorf("failed to extract SMBIOS properties from ioreg output:\n%s", lines)
	}

	return eps, table, nil
}

// stream opens the SMBIOS entry point and an SMBIOS structure stream.  On
// Darwin both are published as properties of the AppleSMBIOS service and
// read via ioreg, since raw memory access is unavailable.
func stream() (io.ReadCloser, EntryPoint, error) {
	buf := &bytes.Buffer{}
	cmd := exec.Command("ioreg", "-rd1", "-c", "AppleSMBIOS")
	cmd.Stdout = buf
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, nil, err
	}

	eps, table, err := ioregProperties(buf.String())
	if err != nil {
		return nil, nil, err
	}

	epb, err := hex.DecodeString(eps)
	if err != nil {
		return nil, nil, err
	}
	data, err := hex.DecodeString(table)
	if err != nil {
		return nil, nil, err
	}

	ep, err := ParseEntryPoint(bytes.NewReader(epb))
	if err != nil {
		return nil, nil, err
	}

	// Bound the structure stream by the table size the entry point
	// declares; the ioreg property may carry trailing padding.
	_, size := ep.Table()
	if size > len(data) {
		return nil, nil, fmt.Errorf("SMBIOS table is %d bytes, shorter than the %d bytes the entry point declares", len(data), size)
	}

	return io.NopCloser(bytes.NewReader(data[:size])), ep, nil
}

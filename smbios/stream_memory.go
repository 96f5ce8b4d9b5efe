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
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
)

// memoryStream locates an SMBIOS entry point by scanning a raw memory
// window and opens a stream over the structure table it points at.  Entry
// points are anchored on 16 byte paragraph boundaries between startAddr
// inclusive and endAddr exclusive; a 64-bit anchor is preferred over a
// 32-bit one in the same paragraph.
func memoryStream(rs io.ReadSeeker, startAddr, endAddr int) (io.ReadCloser, EntryPoint, error) {
	if _, err := rs.Seek(int64(startAddr), io.SeekStart); err != nil {
		return nil, nil, err
	}

	window := make([]byte, endAddr-startAddr)
	if _, err := io.ReadFull(rs, window); err != nil {
		return nil, nil, err
	}

	ep, err := scanEntryPoint(window)
	if err != nil {
		return nil, nil, err
	}

	addr, size := ep.Table()
	if _, err := rs.Seek(int64(addr), io.SeekStart); err != nil {
		return nil, nil, err
	}

	table := make([]byte, size)
	if _, err := io.ReadFull(rs, table); err != nil {
		return nil, nil, err
	}

	return ioutil.NopCloser(bytes.NewReader(table)), ep, nil
}

// scanEntryPoint searches a memory window for an entry point anchor and
// parses the entry point found there.
func scanEntryPoint(window []byte) (EntryPoint, error) {
	for i := 0; i+4 <= len(window); i += 16 {
		var length int
		switch {
		case bytes.HasPrefix(window[i:], magic64):
			// Declared structure length at offset 6.
			if i+7 > len(window) {
				continue
			}
			length = int(window[i+6])
		case bytes.HasPrefix(window[i:], magic32):
			// Declared structure length at offset 5.
			if i+6 > len(window) {
				continue
			}
			length = int(window[i+5])
		default:
			continue
		}

		if i+length > len(window) {
			return nil, fmt.Errorf("SMBIOS entry point at %#x extends past end of search window", i)
		}

		return ParseEntryPoint(bytes.NewReader(window[i : i+length]))
	}

	return nil, errors.New("no SMBIOS entry point found in memory window")
}

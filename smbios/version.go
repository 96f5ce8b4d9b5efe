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

// A Version is the SMBIOS specification version reported by an entry point.
// Structure decoding uses it to gate behavior that changed between
// specification revisions, such as the byte order of the system UUID.
type Version struct {
	Major    int
	Minor    int
	Revision int
}

// EntryPointVersion extracts a Version from an EntryPoint.
func EntryPointVersion(ep EntryPoint) Version {
	major, minor, revision := ep.Version()
	return Version{
		Major:    major,
		Minor:    minor,
		Revision: revision,
	}
}

// AtLeast reports whether v is at or beyond the specified major.minor
// revision.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}

	return v.Minor >= minor
}

// String returns the dotted form of v, such as "3.2.1".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// +build solaris

package smbios

import (
	"io"
	"os"
)

const devSMBIOS = "/dev/smbios"

// stream opens the SMBIOS entry point and an SMBIOS structure stream.  The
// smbios device image leads with the entry point and the structure table
// follows it, bounded by the size the entry point declares.
func stream() (io.ReadCloser, EntryPoint, error) {
	f, err := os.Open(devSMBIOS)
	if err != nil {
		return nil, nil, err
	}

	ep, err := ParseEntryPoint(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	_, size := ep.Table()

	return &tableReadCloser{
		r: io.LimitReader(f, int64(size)),
		c: f,
	}, ep, nil
}

// A tableReadCloser bounds reads of a structure table while closing the
// underlying device file.
type tableReadCloser struct {
	r io.Reader
	c io.Closer
}

func (rc *tableReadCloser) Read(b []byte) (int, error) { return rc.r.Read(b) }
func (rc *tableReadCloser) Close() error               { return rc.c.Close() }

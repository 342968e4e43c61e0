// Package id provides the stable identifiers widgets are tracked by across
// frames. Widgets are re-declared every frame, so an id is a hash of where the
// widget comes from rather than a reference to an object.
package id

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a widget or an area. Ids compare by value.
type ID uint64

const (
	// Null is a valid id, but hashing everything to it collides.
	Null ID = 0
	// Background identifies the background area.
	Background ID = 1
)

// New hashes source into an id.
func New(source string) ID {
	return ID(xxhash.Sum64String(source))
}

// With derives a child id from the parent and a string salt.
func (i ID) With(child string) ID {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i))
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(child)
	return ID(d.Sum64())
}

// WithIndex derives a child id from the parent and an index, for widgets
// declared in a loop.
func (i ID) WithIndex(index int) ID {
	d := xxhash.New()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(i))
	binary.LittleEndian.PutUint64(buf[8:], uint64(index))
	_, _ = d.Write(buf[:])
	return ID(d.Sum64())
}

// ShortDebugFormat is a compact representation for logs and inspectors.
func (i ID) ShortDebugFormat() string {
	return fmt.Sprintf("%04X", uint64(i)>>48)
}

func (i ID) String() string {
	return fmt.Sprintf("%016X", uint64(i))
}

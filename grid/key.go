package grid

import (
	"strconv"
	"strings"
)

// Key is the canonical string encoding of a grid coordinate, "gx,gy".
// It is the set element used by occupancy snapshots and multi-selection.
type Key string

// KeySet is a set of occupied coordinates.
type KeySet map[Key]struct{}

// MakeKey encodes a coordinate pair as a Key. The encoding is bijective
// with (gx, gy) pairs.
func MakeKey(gx, gy int) Key {
	return Key(strconv.Itoa(gx) + "," + strconv.Itoa(gy))
}

// Coords decodes the key back into its coordinate pair.
func (k Key) Coords() (gx, gy int, ok bool) {
	s := string(k)
	i := strings.IndexByte(s, ',')
	if i < 0 {
		return 0, 0, false
	}
	gx, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, false
	}
	gy, err = strconv.Atoi(s[i+1:])
	if err != nil {
		return 0, 0, false
	}
	return gx, gy, true
}

// Clone returns an independent copy of the set.
func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Equal reports whether two sets contain exactly the same keys.
func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

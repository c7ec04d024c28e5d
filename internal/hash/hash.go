// Package hash wraps xxHash64 for the digests computed over partitions.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}


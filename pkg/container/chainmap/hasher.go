package chainmap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/graph-guard/chainmap/pkg/murmur2"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/zeebo/xxh3"
)

// Hasher computes the 32-bit hash of a key.
// Implementations must be deterministic.
type Hasher interface{ Hash(key string) uint32 }

// HasherMurmur2 is the default hasher.
type HasherMurmur2 struct{}

// Hash hashes k using MurmurHash2.
func (HasherMurmur2) Hash(k string) uint32 { return murmur2.Sum32(k) }

// HasherXXH3 hashes keys using XXH3 truncated to 32 bits.
type HasherXXH3 struct {
	Seed uint64
}

// Hash hashes k to a 32-bit hash value.
func (h *HasherXXH3) Hash(k string) uint32 {
	return uint32(xxh3.HashSeed([]byte(k), h.Seed))
}

// HasherXXH64 hashes keys using XXH64 truncated to 32 bits.
// XXH64 is unseeded.
type HasherXXH64 struct{}

// Hash hashes k to a 32-bit hash value.
func (HasherXXH64) Hash(k string) uint32 {
	return uint32(xxhash.Sum64String(k))
}

// HasherXXH32 hashes keys using XXH32.
type HasherXXH32 struct {
	Seed uint32
}

// Hash hashes k to a 32-bit hash value.
func (h *HasherXXH32) Hash(k string) uint32 {
	return xxHash32.Checksum([]byte(k), h.Seed)
}

// Hasher names accepted by HasherByName.
const (
	HasherNameMurmur2 = "murmur2"
	HasherNameXXH3    = "xxh3"
	HasherNameXXH64   = "xxh64"
	HasherNameXXH32   = "xxh32"
)

// HasherByName returns the hasher identified by name
// or (nil, false) if name is unknown.
// seed is ignored by unseeded hashers.
func HasherByName(name string, seed uint64) (Hasher, bool) {
	switch name {
	case HasherNameMurmur2:
		return HasherMurmur2{}, true
	case HasherNameXXH3:
		return &HasherXXH3{Seed: seed}, true
	case HasherNameXXH64:
		return HasherXXH64{}, true
	case HasherNameXXH32:
		return &HasherXXH32{Seed: uint32(seed)}, true
	}
	return nil, false
}

// index returns the bucket index of hash h for n buckets.
// The hash is interpreted as a signed 32-bit integer
// and the mathematical modulo is taken, the result is never negative.
func index(h uint32, n int) int {
	i := int(int32(h)) % n
	if i < 0 {
		i += n
	}
	return i
}

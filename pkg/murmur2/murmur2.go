// Package murmur2 provides MurmurHash2 hashing capabilities.
//
// The variant implemented here is the one used by nginx: a fixed seed of 0
// mixed with the input length. The result is deterministic across platforms.
package murmur2

const m = 0x5bd1e995

// Sum32 returns the 32-bit MurmurHash2 of input.
func Sum32[B []byte | string](input B) uint32 {
	n := len(input)
	h := uint32(n)

	p := 0
	for ; n-p >= 4; p += 4 {
		k := u32(input[p:])

		k *= m
		k ^= k >> 24
		k *= m

		h *= m
		h ^= k
	}

	switch n - p {
	case 3:
		h ^= uint32(input[p+2]) << 16
		fallthrough
	case 2:
		h ^= uint32(input[p+1]) << 8
		fallthrough
	case 1:
		h ^= uint32(input[p])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15

	return h
}

func u32[B []byte | string](buf B) uint32 {
	// go compiler recognizes this pattern
	// and optimizes it on little endian platforms
	return uint32(buf[0]) |
		uint32(buf[1])<<8 |
		uint32(buf[2])<<16 |
		uint32(buf[3])<<24
}

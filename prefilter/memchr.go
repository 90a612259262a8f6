package prefilter

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// MemchrPrefilter scans for a single required byte.
type MemchrPrefilter struct {
	needle   byte
	complete bool
}

// Find returns the first occurrence of the needle byte at or after start.
func (p *MemchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	if i := memchr(haystack[start:], p.needle); i >= 0 {
		return start + i
	}
	return -1
}

// IsComplete reports whether a hit is a full body match.
func (p *MemchrPrefilter) IsComplete() bool { return p.complete }

// HeapBytes returns the memory held by the prefilter.
func (p *MemchrPrefilter) HeapBytes() int { return 0 }

// MemmemPrefilter scans for a single required multi-byte prefix. The first
// byte is located with memchr, then the remainder is verified in place.
type MemmemPrefilter struct {
	needle   []byte
	complete bool
}

// Find returns the first occurrence of the needle at or after start.
func (p *MemmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 {
		return -1
	}
	pos := start
	for pos+len(p.needle) <= len(haystack) {
		i := memchr(haystack[pos:], p.needle[0])
		if i < 0 {
			return -1
		}
		pos += i
		if pos+len(p.needle) > len(haystack) {
			return -1
		}
		if bytes.HasPrefix(haystack[pos:], p.needle) {
			return pos
		}
		pos++
	}
	return -1
}

// IsComplete reports whether a hit is a full body match.
func (p *MemmemPrefilter) IsComplete() bool { return p.complete }

// HeapBytes returns the memory held by the prefilter.
func (p *MemmemPrefilter) HeapBytes() int { return len(p.needle) }

// memchr implements pure Go byte search using SWAR (SIMD Within A Register):
// 8 bytes are processed at a time with uint64 bitwise operations.
//
// Algorithm:
//  1. Broadcast the needle into every byte of a uint64 mask
//  2. XOR an 8-byte chunk with the mask; matching bytes become 0x00
//  3. Apply the zero-byte detection formula to flag zero bytes
//  4. Extract the first match position with a trailing-zero count
func memchr(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	// Small inputs: byte-by-byte beats the setup overhead.
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	needleMask := uint64(needle) * 0x0101010101010101

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask

		// Zero-byte detection (Hacker's Delight): a byte of xor is zero
		// iff the corresponding byte of the original chunk matched.
		zeroes := (xor - 0x0101010101010101) & ^xor & 0x8080808080808080
		if zeroes != 0 {
			return idx + bits.TrailingZeros64(zeroes)/8
		}
		idx += 8
	}

	// Tail shorter than 8 bytes.
	for ; idx < haystackLen; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

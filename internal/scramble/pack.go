// Package scramble turns key material into per-word offsets and applies them
// to word indices.
package scramble

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxChunkWidth is the widest chunk PackChunks can produce.
const MaxChunkWidth = 16

var (
	ErrInsufficientKeyMaterial = errors.New("insufficient key material for the requested chunks")
	ErrChunkWidth              = errors.New("chunk width out of range")
	ErrChunkCount              = errors.New("bit packer produced the wrong number of chunks")
)

// BitWidth returns ceil(log2(n)), the number of bits needed to address n
// words. It is 0 for n <= 1.
func BitWidth(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// PackChunks reads data byte by byte, least significant bit first, and fills
// count chunks of width bits each, also least significant bit first. Width 0
// yields count zero chunks and consumes no key material.
func PackChunks(data []byte, count, width int) ([]uint16, error) {
	if width < 0 || width > MaxChunkWidth {
		return nil, fmt.Errorf("%w: %d bits (want 0..%d)", ErrChunkWidth, width, MaxChunkWidth)
	}
	if count < 0 || count*width > len(data)*8 {
		return nil, fmt.Errorf("%w: %d chunks of %d bits from %d bits",
			ErrInsufficientKeyMaterial, count, width, len(data)*8)
	}
	if count == 0 || width == 0 {
		return make([]uint16, count), nil
	}

	chunks := make([]uint16, 0, count)
	var chunk uint16
	filled := 0
	for _, b := range data {
		for bit := 0; bit < 8; bit++ {
			chunk |= uint16(b>>bit&1) << filled
			filled++
			if filled == width {
				chunks = append(chunks, chunk)
				chunk, filled = 0, 0
				if len(chunks) == count {
					return chunks, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("%w: got %d, want %d", ErrChunkCount, len(chunks), count)
}

package scramble

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("word index out of range")

// Scramble XORs each index with its key chunk and reduces the result modulo
// listLen. Running it again with the same key restores the input only when
// listLen is a power of two (see Involutive): for other lengths the XOR can
// leave [0, listLen) and the modulo folds distinct values together.
func Scramble(indices []int, key []byte, listLen int) ([]int, error) {
	if listLen < 1 {
		return nil, fmt.Errorf("%w: empty word list", ErrIndexOutOfRange)
	}
	for i, idx := range indices {
		if idx < 0 || idx >= listLen {
			return nil, fmt.Errorf("%w: word %d has index %d, list has %d words",
				ErrIndexOutOfRange, i+1, idx, listLen)
		}
	}

	chunks, err := PackChunks(key, len(indices), BitWidth(listLen))
	if err != nil {
		return nil, err
	}

	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = (idx ^ int(chunks[i])) % listLen
	}
	return out, nil
}

// Involutive reports whether Scramble undoes itself for a list of n words.
func Involutive(n int) bool {
	return n > 0 && n&(n-1) == 0
}

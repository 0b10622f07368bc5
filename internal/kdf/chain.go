package kdf

import "golang.org/x/crypto/sha3"

// ChainHash applies SHA3-512 to data, then to its own digest, rounds times in
// total. With rounds == 0 it returns a copy of data.
func ChainHash(data []byte, rounds uint32) []byte {
	if rounds == 0 {
		return append([]byte(nil), data...)
	}
	digest := sha3.Sum512(data)
	for i := uint32(1); i < rounds; i++ {
		digest = sha3.Sum512(digest[:])
	}
	return digest[:]
}

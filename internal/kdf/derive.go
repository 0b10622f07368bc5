package kdf

import (
	"errors"
	"time"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
)

// ErrEmptyPassword is returned when DeriveKey is handed no password bytes.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Key is a derived secret. Callers defer Destroy as soon as they hold one.
type Key struct {
	b [Size]byte
}

// Bytes exposes the key material. The slice aliases the key and is wiped by
// Destroy.
func (k *Key) Bytes() []byte {
	return k.b[:]
}

// Destroy overwrites the key material with zeros.
func (k *Key) Destroy() {
	if k == nil {
		return
	}
	memguard.WipeBytes(k.b[:])
}

// DeriveKey runs p.Rounds rounds of Argon2id over password. Round i is salted
// with ChainHash(password, p.SaltOffset+i) and its output replaces the key
// buffer, so the returned key is the output of the last round. The password
// is not modified; wiping it is the caller's job.
func DeriveKey(password []byte, p Params, progress Progress) (*Key, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if progress == nil {
		progress = nopProgress{}
	}

	key := new(Key)
	start := time.Now()
	for i := 1; i <= p.Rounds; i++ {
		deriveRound(key, password, p, uint32(i))
		progress.Update(newStatus(i, p.Rounds, time.Since(start)))
	}
	return key, nil
}

func deriveRound(key *Key, password []byte, p Params, round uint32) {
	salt := ChainHash(password, p.SaltOffset+round)
	defer memguard.WipeBytes(salt)

	out := argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	defer memguard.WipeBytes(out)

	copy(key.b[:], out)
}

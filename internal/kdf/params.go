// Package kdf derives the 64-byte scrambling key from a password.
//
// Changing any value returned by DefaultParams makes previously scrambled
// wallets unrecoverable.
package kdf

import (
	"errors"
	"fmt"
)

// Size is the length of a derived key in bytes.
const Size = 64

// ErrInvalidParams is matched by every *ConfigError.
var ErrInvalidParams = errors.New("invalid key derivation parameters")

// Params holds the Argon2id cost settings and the round schedule.
type Params struct {
	Time       uint32 // Argon2 passes
	Memory     uint32 // in KiB
	Threads    uint8
	KeyLen     uint32
	Rounds     int    // Argon2 invocations, one salt each
	SaltOffset uint32 // round i salts with ChainHash(password, SaltOffset+i)
}

// DefaultParams returns the production parameters.
func DefaultParams() Params {
	return Params{
		Time:       5,
		Memory:     2 * 1024 * 1024,
		Threads:    4,
		KeyLen:     Size,
		Rounds:     10,
		SaltOffset: 580,
	}
}

// ConfigError reports the first parameter that failed validation.
type ConfigError struct {
	Field string
	Value uint64
	Want  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid key derivation parameter %s=%d: must be %s", e.Field, e.Value, e.Want)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidParams
}

// Validate rejects parameters Argon2id cannot run with, and key lengths other
// than Size.
func (p Params) Validate() error {
	switch {
	case p.Time < 1:
		return &ConfigError{Field: "time", Value: uint64(p.Time), Want: "at least 1"}
	case p.Threads < 1:
		return &ConfigError{Field: "threads", Value: uint64(p.Threads), Want: "at least 1"}
	case p.Memory < 8*uint32(p.Threads):
		return &ConfigError{Field: "memory", Value: uint64(p.Memory), Want: fmt.Sprintf("at least %d KiB", 8*uint32(p.Threads))}
	case p.KeyLen != Size:
		return &ConfigError{Field: "keylen", Value: uint64(p.KeyLen), Want: fmt.Sprintf("exactly %d", Size)}
	case p.Rounds < 1:
		return &ConfigError{Field: "rounds", Value: uint64(p.Rounds), Want: "at least 1"}
	}
	return nil
}

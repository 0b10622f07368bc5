package kdf

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/sha3"
)

func TestChainHashZeroRounds(t *testing.T) {
	data := []byte("Test1234!@#$")
	out := ChainHash(data, 0)
	if !bytes.Equal(out, data) {
		t.Fatalf("ChainHash(data, 0) = %x, want %x", out, data)
	}

	// The result must not alias the input.
	out[0] ^= 0xff
	if data[0] != 'T' {
		t.Errorf("ChainHash(data, 0) returned the caller's slice")
	}
}

func TestChainHashSequential(t *testing.T) {
	data := []byte("season the dish")
	for _, rounds := range []uint32{1, 2, 3, 17, 581} {
		want := data
		for i := uint32(0); i < rounds; i++ {
			sum := sha3.Sum512(want)
			want = sum[:]
		}
		if got := ChainHash(data, rounds); !bytes.Equal(got, want) {
			t.Errorf("ChainHash(%d rounds) = %x, want %x", rounds, got, want)
		}
	}
}

func TestChainHashKnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		rounds uint32
		want   string
	}{
		{
			name:   "single sha3-512",
			data:   "abc",
			rounds: 1,
			want:   "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
		},
		{
			name:   "three rounds",
			data:   "abc",
			rounds: 3,
			want:   "0706ea1e63053d8f6a83c8c01a70edebb4cffa23d3ea889bd28a96dfcdfc5bedc8d82fb5b6362f13507347008040e3b0b49a05ddf7502ad124983b02faf54b73",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hex.EncodeToString(ChainHash([]byte(tt.data), tt.rounds))
			if got != tt.want {
				t.Errorf("ChainHash(%q, %d) = %s, want %s", tt.data, tt.rounds, got, tt.want)
			}
		})
	}
}

func TestChainHashFirstRoundSalt(t *testing.T) {
	got := ChainHash([]byte("Test1234!@#$"), DefaultParams().SaltOffset+1)
	if len(got) != 64 {
		t.Fatalf("salt length = %d, want 64", len(got))
	}
	if prefix := hex.EncodeToString(got[:16]); prefix != "0a21698e670e330c08400e11e126be71" {
		t.Errorf("round 1 salt prefix = %s", prefix)
	}
}

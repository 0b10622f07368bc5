package scramble

import (
	"errors"
	"reflect"
	"testing"
)

func TestBitWidth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{1000, 10},
		{1024, 10},
		{1025, 11},
		{2048, 11},
		{65536, 16},
	}
	for _, tt := range tests {
		if got := BitWidth(tt.n); got != tt.want {
			t.Errorf("BitWidth(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPackChunksZeroKey(t *testing.T) {
	zero := make([]byte, 64)
	for width := 1; width <= MaxChunkWidth; width++ {
		count := 512 / width
		chunks, err := PackChunks(zero, count, width)
		if err != nil {
			t.Fatalf("PackChunks(zero, %d, %d) failed: %v", count, width, err)
		}
		if len(chunks) != count {
			t.Fatalf("width %d: got %d chunks, want %d", width, len(chunks), count)
		}
		for i, c := range chunks {
			if c != 0 {
				t.Fatalf("width %d: chunk %d = %d, want 0", width, i, c)
			}
		}
	}
}

func TestPackChunksBitOrder(t *testing.T) {
	data := make([]byte, 64)
	copy(data, []byte{0xff, 0x01, 0xa5, 0x3c})

	tests := []struct {
		name  string
		count int
		width int
		want  []uint16
	}{
		{name: "11 bit across byte boundary", count: 3, width: 11, want: []uint16{511, 1184, 242}},
		{name: "nibbles", count: 6, width: 4, want: []uint16{15, 15, 1, 0, 5, 10}},
		{name: "16 bit", count: 2, width: 16, want: []uint16{511, 15525}},
		{name: "single bits", count: 9, width: 1, want: []uint16{1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PackChunks(data, tt.count, tt.width)
			if err != nil {
				t.Fatalf("PackChunks failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PackChunks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackChunksExactFit(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = 0xff
	}
	chunks, err := PackChunks(data, 32, 16)
	if err != nil {
		t.Fatalf("PackChunks(64 bytes, 32, 16) failed: %v", err)
	}
	for i, c := range chunks {
		if c != 0xffff {
			t.Fatalf("chunk %d = %#x, want 0xffff", i, c)
		}
	}
}

func TestPackChunksErrors(t *testing.T) {
	key := make([]byte, 64)
	tests := []struct {
		name  string
		count int
		width int
		want  error
	}{
		{name: "too many 11 bit chunks", count: 47, width: 11, want: ErrInsufficientKeyMaterial},
		{name: "one bit over", count: 33, width: 16, want: ErrInsufficientKeyMaterial},
		{name: "negative count", count: -1, width: 11, want: ErrInsufficientKeyMaterial},
		{name: "negative width", count: 12, width: -1, want: ErrChunkWidth},
		{name: "wider than uint16", count: 12, width: 17, want: ErrChunkWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PackChunks(key, tt.count, tt.width)
			if !errors.Is(err, tt.want) {
				t.Errorf("PackChunks(%d, %d) = %v, want %v", tt.count, tt.width, err, tt.want)
			}
		})
	}
}

func TestPackChunksZeroWidth(t *testing.T) {
	chunks, err := PackChunks(nil, 12, 0)
	if err != nil {
		t.Fatalf("PackChunks(width 0) failed: %v", err)
	}
	if want := make([]uint16, 12); !reflect.DeepEqual(chunks, want) {
		t.Errorf("PackChunks(width 0) = %v, want %v", chunks, want)
	}
}

func TestPackChunksEmpty(t *testing.T) {
	chunks, err := PackChunks(make([]byte, 64), 0, 11)
	if err != nil || len(chunks) != 0 {
		t.Errorf("PackChunks(count 0) = %v, %v; want empty, nil", chunks, err)
	}
}

func TestPackChunksLargestWallet(t *testing.T) {
	// 33 words of 11 bits is the most a wallet ever asks for.
	chunks, err := PackChunks(make([]byte, 64), 33, 11)
	if err != nil || len(chunks) != 33 {
		t.Errorf("PackChunks(33, 11) = %d chunks, %v", len(chunks), err)
	}
}

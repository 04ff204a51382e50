package ihex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestReorder(t *testing.T) {
	src := seq(1, 16)
	tests := []struct {
		name  string
		width Width
		order binary.ByteOrder
		want  []byte
	}{
		{"8 bit", Width8, binary.LittleEndian, seq(1, 16)},
		{"16 bit big endian", Width16, binary.BigEndian, seq(1, 16)},
		{"16 bit little endian", Width16, binary.LittleEndian,
			[]byte{2, 1, 4, 3, 6, 5, 8, 7, 10, 9, 12, 11, 14, 13, 16, 15}},
		{"32 bit little endian", Width32, binary.LittleEndian,
			[]byte{4, 3, 2, 1, 8, 7, 6, 5, 12, 11, 10, 9, 16, 15, 14, 13}},
		{"64 bit little endian", Width64, binary.LittleEndian,
			[]byte{8, 7, 6, 5, 4, 3, 2, 1, 16, 15, 14, 13, 12, 11, 10, 9}},
		{"64 bit big endian", Width64, binary.BigEndian, seq(1, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reorder(src, tt.width, tt.order)
			if err != nil {
				t.Fatalf("Reorder() error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Reorder() = % X, want % X", got, tt.want)
			}
		})
	}
	if !bytes.Equal(src, seq(1, 16)) {
		t.Errorf("Reorder() modified its input: % X", src)
	}
}

func TestReorderErrors(t *testing.T) {
	if _, err := Reorder(seq(0, 6), Width(5), binary.BigEndian); !errors.Is(err, ErrWrongRecordLength) {
		t.Errorf("invalid width: got %v", err)
	}
	if _, err := Reorder(seq(0, 6), Width32, binary.BigEndian); !errors.Is(err, ErrWrongRecordLength) {
		t.Errorf("6 bytes in 32 bit words: got %v", err)
	}
	if got, err := Reorder(nil, Width64, nil); err != nil || len(got) != 0 {
		t.Errorf("Reorder(nil) = %v, %v", got, err)
	}
}

func TestWidthValid(t *testing.T) {
	for w := 0; w < 16; w++ {
		want := w == 1 || w == 2 || w == 4 || w == 8
		if got := Width(w).Valid(); got != want {
			t.Errorf("Width(%d).Valid() = %v, want %v", w, got, want)
		}
	}
}

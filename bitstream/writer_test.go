/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitstream

import (
	"errors"
	"testing"
)

func TestWriterPutBitsWordAligned(t *testing.T) {
	dst := make([]byte, 4)
	w := NewWriter(dst, 2) // 2 16-bit words == 32 bits

	n, err := w.PutBits(0xDEADBEEF, 32)
	if err != nil {
		t.Fatalf("PutBits: %v", err)
	}
	if n != 32 {
		t.Fatalf("expected 32 bits written, got %d", n)
	}

	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d: got %#x want %#x", i, dst[i], want[i])
		}
	}
}

func TestWriterPutBitsSplitAcrossBytes(t *testing.T) {
	dst := make([]byte, 4)
	w := NewWriter(dst, 2)

	// 3 bits, then 13 bits: crosses the first byte boundary.
	if _, err := w.PutBits(0b101, 3); err != nil {
		t.Fatalf("PutBits 1: %v", err)
	}
	if _, err := w.PutBits(0b1100110011001, 13); err != nil {
		t.Fatalf("PutBits 2: %v", err)
	}

	if w.BitsWritten() != 16 {
		t.Fatalf("expected 16 bits written, got %d", w.BitsWritten())
	}

	// 101 1100110011001 => byte0 = 10111001, byte1 = 10011001
	if dst[0] != 0b10111001 {
		t.Fatalf("byte0: got %08b", dst[0])
	}
	if dst[1] != 0b10011001 {
		t.Fatalf("byte1: got %08b", dst[1])
	}
}

func TestWriterNoOpOnInvalidCount(t *testing.T) {
	w := NewWriter(make([]byte, 4), 2)

	if n, err := w.PutBits(1, 0); n != 0 || err != nil {
		t.Fatalf("n=0 should be a no-op, got n=%d err=%v", n, err)
	}
	if n, err := w.PutBits(1, 33); n != 0 || err != nil {
		t.Fatalf("n=33 should be a no-op, got n=%d err=%v", n, err)
	}
	if w.BitsWritten() != 0 {
		t.Fatalf("cursor should not move on a no-op")
	}
}

func TestWriterSmallBufferDetection(t *testing.T) {
	dst := make([]byte, 4)
	w := NewWriter(dst, 2) // capacity exactly 32 bits

	if _, err := w.PutBits(0, 31); err != nil {
		t.Fatalf("PutBits 31: %v", err)
	}
	if _, err := w.PutBits(0, 2); !errors.Is(err, ErrSmallBuffer) {
		t.Fatalf("expected ErrSmallBuffer, got %v", err)
	}
	if w.BitsWritten() != 31 {
		t.Fatalf("cursor must not advance on a rejected write, got %d", w.BitsWritten())
	}
}

func TestWriterCapacityRoundsUpToEvenWordCount(t *testing.T) {
	// capWords16 = 1 (odd) rounds up to 2 words == 32 bits, per
	// ⌈words16/2⌉*2*16.
	w := NewWriter(make([]byte, 4), 1)
	if _, err := w.PutBits(0, 32); err != nil {
		t.Fatalf("expected 32 bits to fit, got %v", err)
	}
}

func TestWriterPadToWord32(t *testing.T) {
	dst := make([]byte, 8)
	w := NewWriter(dst, 4)

	if _, err := w.PutBits(0b111, 3); err != nil {
		t.Fatalf("PutBits: %v", err)
	}
	if err := w.PadToWord32(); err != nil {
		t.Fatalf("PadToWord32: %v", err)
	}
	if w.BitsWritten() != 32 {
		t.Fatalf("expected padding to 32 bits, got %d", w.BitsWritten())
	}
}

func TestWriterPadToWord32NoopWhenEmpty(t *testing.T) {
	w := NewWriter(make([]byte, 8), 4)
	if err := w.PadToWord32(); err != nil {
		t.Fatalf("PadToWord32: %v", err)
	}
	if w.BitsWritten() != 0 {
		t.Fatalf("an empty payload must not be padded, got %d bits", w.BitsWritten())
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	dst := make([]byte, 16)
	w := NewWriter(dst, 8)

	values := []struct {
		v uint32
		n uint
	}{
		{0x1, 1},
		{0x2A, 7},
		{0xFFFF, 16},
		{0xABCDEF01, 32},
		{0, 5},
	}

	for _, tc := range values {
		if _, err := w.PutBits(tc.v, tc.n); err != nil {
			t.Fatalf("PutBits(%v, %d): %v", tc.v, tc.n, err)
		}
	}

	r := NewReader(dst, w.BitsWritten())
	for _, tc := range values {
		got, err := r.GetBits(tc.n)
		if err != nil {
			t.Fatalf("GetBits(%d): %v", tc.n, err)
		}
		want := tc.v
		if tc.n < 32 {
			want &= (1 << tc.n) - 1
		}
		if got != want {
			t.Fatalf("GetBits(%d): got %#x want %#x", tc.n, got, want)
		}
	}
}

func TestWriterUnaryRoundTrip(t *testing.T) {
	dst := make([]byte, 16)
	w := NewWriter(dst, 8)

	qs := []uint{0, 1, 5, 31, 40}
	for _, q := range qs {
		if err := w.PutUnary(q); err != nil {
			t.Fatalf("PutUnary(%d): %v", q, err)
		}
	}

	r := NewReader(dst, w.BitsWritten())
	for _, q := range qs {
		got, err := r.GetUnary()
		if err != nil {
			t.Fatalf("GetUnary: %v", err)
		}
		if got != q {
			t.Fatalf("GetUnary: got %d want %d", got, q)
		}
	}
}

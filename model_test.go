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

package cmp

import "testing"

func TestMapToPosBijection16(t *testing.T) {
	seen := make(map[uint32]bool)
	for v := uint32(0); v < 1<<16; v++ {
		u := mapToPos(v, 16)
		if seen[u] {
			t.Fatalf("mapToPos(%d, 16) = %d is not unique", v, u)
		}
		seen[u] = true

		back := mapToPosInv(u, 16)
		if back != v {
			t.Fatalf("mapToPosInv(mapToPos(%d)) = %d, want %d", v, back, v)
		}
	}
}

func TestMapToPosBijectionSpotCheck32(t *testing.T) {
	for _, v := range []uint32{0, 1, 2, 0xFFFFFFFF, 0x80000000, 0x7FFFFFFF, 12345, 4000000000} {
		u := mapToPos(v, 32)
		back := mapToPosInv(u, 32)
		if back != v {
			t.Fatalf("mapToPosInv(mapToPos(%d)) = %d, want %d", v, back, v)
		}
	}
}

func TestMapToPosKnownValues(t *testing.T) {
	// 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3 (the classic zigzag-style fold).
	cases := []struct {
		v    uint32 // bit pattern in a 16-bit field
		want uint32
	}{
		{0, 0},
		{0xFFFF, 1}, // -1 in 16-bit two's complement
		{1, 2},
		{0xFFFE, 3}, // -2
	}
	for _, c := range cases {
		if got := mapToPos(c.v, 16); got != c.want {
			t.Errorf("mapToPos(%#x, 16) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestRoundFwdInv(t *testing.T) {
	if got := roundFwd(0b1011, 2); got != 0b10 {
		t.Errorf("roundFwd(0b1011, 2) = %b, want %b", got, 0b10)
	}
	if got := roundInv(0b10, 2); got != 0b1000 {
		t.Errorf("roundInv(0b10, 2) = %b, want %b", got, 0b1000)
	}
}

func TestCalUpModel(t *testing.T) {
	// Full weight on the observation reproduces it exactly.
	if got := calUpModel(100, 50, MaxModelValue); got != 100 {
		t.Errorf("calUpModel(100, 50, 16) = %d, want 100", got)
	}
	// Zero weight keeps the prior model unchanged.
	if got := calUpModel(100, 50, 0); got != 50 {
		t.Errorf("calUpModel(100, 50, 0) = %d, want 50", got)
	}
	// Half weight is the midpoint.
	if got := calUpModel(100, 50, 8); got != 75 {
		t.Errorf("calUpModel(100, 50, 8) = %d, want 75", got)
	}
}

func TestCalMultiOffsetTable(t *testing.T) {
	cases := []struct {
		d    uint32
		want uint32
	}{
		{0, 0}, {3, 0},
		{4, 1}, {15, 1},
		{16, 2}, {63, 2},
		{64, 3}, {255, 3},
		{0x3FFFFFFF, 14},
		{0x40000000, 15},
		{0xFFFFFFFF, 15},
	}
	for _, c := range cases {
		if got := calMultiOffset(c.d); got != c.want {
			t.Errorf("calMultiOffset(%#x) = %d, want %d", c.d, got, c.want)
		}
	}
}

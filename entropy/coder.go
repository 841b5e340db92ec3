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

package entropy

import (
	"fmt"

	"github.com/dloidolt/plato-rdcu/bitstream"
)

// Coder packs and unpacks "normal" (non-outlier) unsigned values as Rice or
// Golomb codewords, chosen by NewCoder based on whether the divisor m is a
// power of two. It holds no per-value state: every call is independent,
// matching the codec core's no-cross-record-context rule.
type Coder interface {
	// Encode writes the codeword for u and returns its length in bits.
	Encode(w *bitstream.Writer, u uint32) (uint, error)
	// Decode reads one codeword and returns the value it represents.
	Decode(r *bitstream.Reader) (uint32, error)
	// Param returns the Golomb parameter m this coder was built for.
	Param() uint32
}

// NewCoder returns the Rice coder when m is a power of two, else the
// Golomb coder. m must be >= 1.
func NewCoder(m uint32) (Coder, error) {
	if m == 0 {
		return nil, fmt.Errorf("entropy: golomb parameter must be >= 1, got %d", m)
	}

	if isPowerOfTwo(m) {
		return &riceCoder{m: m, log2m: floorLog2(m)}, nil
	}

	log2m := ceilLog2(m)
	len0 := log2m + 1
	cutoff := (uint32(1) << len0) - m
	if cutoff == 0 {
		// Never true here: 2^len0 >= 2m, so cutoff >= m > 0 for every m,
		// power of two or not; kept to mirror the source formula's guard.
		cutoff = m
	}
	return &golombCoder{m: m, log2m: log2m, len0: len0, cutoff: cutoff}, nil
}

func isPowerOfTwo(m uint32) bool {
	return m&(m-1) == 0
}

// floorLog2 returns the position of the highest set bit of m (m > 0).
func floorLog2(m uint32) uint {
	n := uint(0)
	for m > 1 {
		m >>= 1
		n++
	}
	return n
}

// ceilLog2 returns ⌈log2(m)⌉ for m > 0.
func ceilLog2(m uint32) uint {
	n := floorLog2(m)
	if uint32(1)<<n < m {
		n++
	}
	return n
}

// riceCoder implements Rice coding: divisor m is a power of two, so the
// remainder is a fixed log2(m)-bit binary field and the quotient is
// unary-coded with an explicit terminating zero.
type riceCoder struct {
	m     uint32
	log2m uint
}

func (c *riceCoder) Param() uint32 { return c.m }

func (c *riceCoder) Encode(w *bitstream.Writer, u uint32) (uint, error) {
	q := uint(u >> c.log2m)
	r := u & (c.m - 1)

	if err := w.PutUnary(q); err != nil {
		return 0, err
	}

	if c.log2m > 0 {
		if _, err := w.PutBits(r, c.log2m); err != nil {
			return 0, err
		}
	}

	return q + 1 + c.log2m, nil
}

func (c *riceCoder) Decode(r *bitstream.Reader) (uint32, error) {
	q, err := r.GetUnary()
	if err != nil {
		return 0, err
	}

	var rem uint32
	if c.log2m > 0 {
		rem, err = r.GetBits(c.log2m)
		if err != nil {
			return 0, err
		}
	}

	return uint32(q)<<c.log2m | rem, nil
}

// golombCoder implements the source library's literal group/cutoff
// Golomb construction for a divisor m that is not a power of two, with
// log2_m = ⌈log2(m)⌉, len0 = log2_m+1 and cutoff = 2^len0 − m:
//
//   - values u < cutoff form "group 0" and are emitted directly in len0
//     bits, with no unary prefix at all;
//   - values u >= cutoff fall in group g = (u−cutoff)/m, emitted as g
//     one-bits with no terminator, followed by a (len0+1)-bit suffix
//     field cutoff*2 + (u−cutoff) − g*m.
//
// This differs from textbook truncated-binary Golomb coding (which
// unary-codes floor(u/m) with an explicit terminating zero, then
// truncated-binary-codes u mod m): here the cutoff applies to the raw
// value rather than to the remainder, and the unary group index carries
// no terminator, folding what would otherwise be a separate quotient
// field into the same bit budget as the suffix. Decode cannot use the
// usual "count unary ones, then read a fixed suffix" procedure, because a
// group-0 codeword and the suffix field of a later group can both start
// with a 1 bit; instead it grows a trailing window one bit at a time
// until the window holds a valid suffix and everything ahead of it is
// all ones.
type golombCoder struct {
	m      uint32
	log2m  uint
	len0   uint
	cutoff uint32
}

func (c *golombCoder) Param() uint32 { return c.m }

func (c *golombCoder) Encode(w *bitstream.Writer, u uint32) (uint, error) {
	if u < c.cutoff {
		if _, err := w.PutBits(u, c.len0); err != nil {
			return 0, err
		}
		return c.len0, nil
	}

	g := (u - c.cutoff) / c.m
	suffix := c.cutoff*2 + (u - c.cutoff) - g*c.m

	if err := w.PutOnes(uint(g)); err != nil {
		return 0, err
	}
	if _, err := w.PutBits(suffix, c.len0+1); err != nil {
		return 0, err
	}

	return uint(g) + c.len0 + 1, nil
}

func (c *golombCoder) Decode(r *bitstream.Reader) (uint32, error) {
	t, err := r.GetBits(c.len0)
	if err != nil {
		return 0, err
	}
	if t < c.cutoff {
		return t, nil
	}

	// The len0 bits just read are the start of a longer codeword: g
	// one-bits (no terminator) followed by a (len0+1)-bit suffix field
	// F = cutoff*2 + r. Grow the codeword one bit at a time, keeping only
	// the trailing len0+1 bits as a window, until that window holds a
	// valid F; every bit shifted out of the window must be a one-bit of
	// the group prefix, so the prefix length g is not limited by the
	// window's width.
	suffixWidth := c.len0 + 1
	mask := (uint64(1) << suffixWidth) - 1
	window := uint64(t)
	n := c.len0

	for {
		bit, err := r.GetBits(1)
		if err != nil {
			return 0, err
		}
		if n >= suffixWidth && (window>>(suffixWidth-1))&1 == 0 {
			return 0, fmt.Errorf("entropy: invalid golomb codeword for m=%d", c.m)
		}
		window = (window<<1 | uint64(bit)) & mask
		n++

		g := n - suffixWidth
		f := uint32(window)

		if f >= 2*c.cutoff && f < 2*c.cutoff+c.m {
			return uint32(g)*c.m + f - c.cutoff, nil
		}
	}
}

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

// roundFwd applies the lossy forward rounding round_fwd(v, k) = v >> k.
func roundFwd(v uint32, k uint32) uint32 {
	return v >> k
}

// roundInv applies the inverse rounding round_inv(v, k) = v << k. The
// decoder (and the model pre-processor simulating the decoder's view of
// an already-emitted observation) uses this to stay in the original
// field's scale.
func roundInv(v uint32, k uint32) uint32 {
	return v << k
}

// maskWidth truncates v to its low width bits, width in [1, 32]. width >=
// 32 is a no-op: field widths never exceed 32 in this codec, but the
// guard keeps the 1<<32 shift (undefined for uint32) off the hot path.
func maskWidth(v uint32, width uint) uint32 {
	if width >= 32 {
		return v
	}
	return v & ((uint32(1) << width) - 1)
}

// calUpModel returns the updated model value after observing a (the
// decoder-visible, rounding-reconstructed observation) against b (the
// prior model value), blended with weight w in [0, MaxModelValue]. Its
// exact arithmetic is not in the retrieved source (cmp_support.c was not
// part of the retrieval pack); this reconstruction follows spec.md's
// prose ("weighted blend ... in [0, MAX_MODEL_VALUE]") using only integer
// shifts, consistent with MaxModelValue == 16 == 1<<4 and the no-floating-
// -point non-goal: w/16 of a plus (16-w)/16 of b.
func calUpModel(a, b, w uint32) uint32 {
	return (a*w + b*(MaxModelValue-w)) >> 4
}

// signExtend interprets the low width bits of v as a two's-complement
// signed integer of that width and sign-extends it into an int64.
func signExtend(v uint32, width uint) int64 {
	v = maskWidth(v, width)
	if width >= 32 {
		return int64(int32(v))
	}
	signBit := uint32(1) << (width - 1)
	if v&signBit != 0 {
		return int64(v) - int64(uint32(1)<<width)
	}
	return int64(v)
}

// mapToPos folds the signed residual held in the low width bits of v into
// an unsigned natural number, per spec section 4.3: u = (s<0) ? -s*2-1 :
// s*2, performed (and wrapped) in the field's native width.
func mapToPos(v uint32, width uint) uint32 {
	s := signExtend(v, width)

	var u uint32
	if s < 0 {
		u = uint32(-s)*2 - 1
	} else {
		u = uint32(s) * 2
	}

	return maskWidth(u, width)
}

// mapToPosInv is the inverse of mapToPos: given the unsigned natural u,
// it returns the field-width-wrapped unsigned bit pattern of the signed
// residual s it came from.
func mapToPosInv(u uint32, width uint) uint32 {
	var s int64
	if u&1 == 1 {
		s = -((int64(u) + 1) / 2)
	} else {
		s = int64(u / 2)
	}

	return maskWidth(uint32(s), width)
}

// maxMultiOffset is the highest offset cal_multi_offset can return: the
// 16-row step table saturates there for any d above 0x3FFF_FFFF.
const maxMultiOffset = 15

// calMultiOffset implements the multi-escape step table: offset = 0 for
// d <= 3, else floor(log4(d)), i.e. the number of additional 2-bit groups
// needed to represent d, saturating at maxMultiOffset.
func calMultiOffset(d uint32) uint32 {
	offset := uint32(0)
	bound := uint32(3)

	for offset < maxMultiOffset && d > bound {
		offset++
		bound = bound*4 + 3
	}

	return offset
}

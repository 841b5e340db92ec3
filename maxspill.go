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

// dataFieldWidth returns the bit width shared by every biased data field
// of shape (exp_flags excluded): 16 for ShapeU16, 32 for everything else.
func dataFieldWidth(shape ShapeID) uint {
	if shape == ShapeU16 {
		return 16
	}
	return 32
}

func maxFieldValue(width uint) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << width) - 1
}

// MaxSpill returns the largest legal spill for (golombPar, mode), per
// spec section 4.4: the exact value is implementation-defined but must be
// a pure function agreeing between encoder and decoder. golombPar itself
// does not bound spill here (the escape path's cost is independent of m);
// what must be bounded is the *field width* budget the escape mechanism
// draws on:
//
//   - zero-escape: the outlier path re-emits the value verbatim in
//     bit_len unencoded bits, so spill (and every value below it) must
//     fit the field's native width.
//   - multi-escape: the escape trigger symbol itself is spill+offset,
//     which must also stay within the field's native width for offset up
//     to maxMultiOffset — so spill is capped maxMultiOffset lower than
//     the zero-escape case to leave room for the largest offset.
func MaxSpill(golombPar uint32, mode Mode) (uint32, error) {
	d, err := descriptorFor(mode)
	if err != nil {
		return 0, err
	}

	maxVal := maxFieldValue(dataFieldWidth(d.Shape))

	if d.Escape == escapeMulti {
		return maxVal - maxMultiOffset, nil
	}

	return maxVal, nil
}

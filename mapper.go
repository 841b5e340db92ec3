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

// mapFields folds every field of every sample in place from a signed
// residual into an unsigned natural number (spec section 4.3). When
// biasZero is set (the zero-escape mechanism is active for this mode),
// every field marked Biased in its descriptor is incremented by one
// afterward, reserving zero as the in-band escape symbol; exp_flags is
// never biased even under zero-escape.
func mapFields(fields []Field, input []uint32, samples uint32, biasZero bool) {
	nf := len(fields)

	for i := 0; i < int(samples); i++ {
		base := i * nf

		for j, f := range fields {
			idx := base + j
			u := mapToPos(input[idx], f.Width)

			if biasZero && f.Biased {
				u = maskWidth(u+1, f.Width)
			}

			input[idx] = u
		}
	}
}

// unmapFields is the inverse of mapFields, used by the decompressor.
func unmapFields(fields []Field, values []uint32, samples uint32, biasZero bool) {
	nf := len(fields)

	for i := 0; i < int(samples); i++ {
		base := i * nf

		for j, f := range fields {
			idx := base + j
			u := values[idx]

			if biasZero && f.Biased {
				u = maskWidth(u-1, f.Width)
			}

			values[idx] = mapToPosInv(u, f.Width)
		}
	}
}

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

// preprocessDiff replaces each field of input, in place, with its rounded
// 1-D difference against the previous sample (wrap-around in the field's
// own width), per spec section 4.2. It walks tail to head so that every
// x[i] still sees the untransformed x[i-1] when it is read.
func preprocessDiff(fields []Field, input []uint32, samples uint32, round uint32) {
	nf := len(fields)
	if samples == 0 {
		return
	}

	for i := int(samples) - 1; i >= 1; i-- {
		base := i * nf
		prevBase := (i - 1) * nf

		for j, f := range fields {
			cur := roundFwd(input[base+j], round)
			prev := roundFwd(input[prevBase+j], round)
			input[base+j] = maskWidth(cur-prev, f.Width)
		}
	}

	for j, f := range fields {
		input[j] = maskWidth(roundFwd(input[j], round), f.Width)
	}
}

// preprocessModel replaces each field of input, in place, with its
// rounded residual against the corresponding model entry, and writes the
// updated model (into updatedModel if non-nil, else back into model) per
// the cal_up_model blend of spec section 4.2. Processed head to tail;
// order does not affect correctness since each sample only reads its own
// model[i] slot, but a fixed order keeps the transform deterministic.
func preprocessModel(fields []Field, input, model, updatedModel []uint32, samples uint32, round uint32, modelValue uint32) {
	nf := len(fields)
	dst := model
	if updatedModel != nil {
		dst = updatedModel
	}

	for i := 0; i < int(samples); i++ {
		base := i * nf

		for j, f := range fields {
			idx := base + j
			rin := roundFwd(input[idx], round)
			rm := roundFwd(model[idx], round)

			observation := roundInv(rin, round)
			updated := calUpModel(observation, model[idx], modelValue)

			input[idx] = maskWidth(rin-rm, f.Width)
			dst[idx] = maskWidth(updated, f.Width)
		}
	}
}

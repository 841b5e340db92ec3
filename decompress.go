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

import "github.com/dloidolt/plato-rdcu/bitstream"

// DecompressConfig bundles the parameters a decompression call needs: the
// same mode and tuning parameters the encoder used, the compressed
// payload and its exact bit length, and (for model modes) the model
// buffer the encoder started from. There is no separate validator here —
// a decompression call is only ever made with the mirrored parameters
// Result reports back from the matching Compress call, so the closed-mode
// and parameter-bound checks Config.Validate performs do not need
// repeating; Decompress still refuses an unrecognized Mode.
type DecompressConfig struct {
	Mode Mode

	GolombPar  uint32
	Spill      uint32
	ModelValue uint32
	Round      uint32
	Samples    uint32

	Model      []uint32
	Compressed []byte
	CmpSize    uint32 // bits

	Log Logger
}

// DecompressResult carries the reconstructed samples and, for model
// modes, the model buffer updated exactly as the encoder's would have
// been, so a caller running a chain of calls can thread it forward.
type DecompressResult struct {
	Decoded      []uint32
	UpdatedModel []uint32
}

// Decompress is the mirror image of Compress: for any valid cfg, any
// input and model Compress was called with, Decompress(Compress(cfg))
// reconstructs round_inv(round_fwd(input)) element-wise (spec section 8's
// round-trip property).
func Decompress(cfg *DecompressConfig) (DecompressResult, error) {
	if cfg.Mode >= modeCount {
		return DecompressResult{}, internalError("mode %d is not a recognized compression mode", cfg.Mode)
	}

	desc, _ := descriptorFor(cfg.Mode)

	if cfg.Samples == 0 {
		return DecompressResult{}, nil
	}

	if rawModeIsUsed(cfg.Mode) {
		r := bitstream.NewReader(cfg.Compressed, uint64(cfg.CmpSize))
		decoded, err := decodeRaw(r, desc.Shape, cfg.Samples)
		if err != nil {
			errorf(cfg.Log, "%v", err)
			return DecompressResult{}, err
		}
		return DecompressResult{Decoded: decoded}, nil
	}

	rc, err := newRecordCodec(desc, cfg.GolombPar, cfg.Spill)
	if err != nil {
		errorf(cfg.Log, "%v", err)
		return DecompressResult{}, internalError("%v", err)
	}

	fields := desc.Shape.Fields()
	nf := len(fields)
	values := make([]uint32, int(cfg.Samples)*nf)

	r := bitstream.NewReader(cfg.Compressed, uint64(cfg.CmpSize))
	for i := 0; i < int(cfg.Samples); i++ {
		if err := rc.decodeSample(r, values, i*nf); err != nil {
			errorf(cfg.Log, "%v", err)
			return DecompressResult{}, err
		}
	}

	unmapFields(fields, values, cfg.Samples, desc.Escape == escapeZero)

	var updatedModel []uint32
	switch desc.Pre {
	case preProcDiff:
		postprocessDiff(fields, values, cfg.Samples, cfg.Round)
	case preProcModel:
		updatedModel = postprocessModel(fields, values, cfg.Model, cfg.Samples, cfg.Round, cfg.ModelValue)
	}

	return DecompressResult{Decoded: values, UpdatedModel: updatedModel}, nil
}

// postprocessDiff undoes preprocessDiff in place: values holds per-field
// residuals; after this call it holds round_inv(round_fwd(x)) for the
// original sample array, head to tail (each reconstruction depends on the
// previous sample's already-reconstructed rounded value).
func postprocessDiff(fields []Field, values []uint32, samples uint32, round uint32) {
	nf := len(fields)

	for i := 1; i < int(samples); i++ {
		base := i * nf
		prevBase := (i - 1) * nf

		for j, f := range fields {
			values[base+j] = maskWidth(values[base+j]+values[prevBase+j], f.Width)
		}
	}

	for i := 0; i < int(samples); i++ {
		base := i * nf
		for j, f := range fields {
			values[base+j] = maskWidth(roundInv(values[base+j], round), f.Width)
		}
	}
}

// postprocessModel undoes preprocessModel in place and returns the
// updated model buffer, computed identically to the encoder's.
func postprocessModel(fields []Field, values []uint32, model []uint32, samples uint32, round uint32, modelValue uint32) []uint32 {
	nf := len(fields)
	updated := make([]uint32, len(values))

	for i := 0; i < int(samples); i++ {
		base := i * nf

		for j, f := range fields {
			idx := base + j
			rm := roundFwd(model[idx], round)
			rin := maskWidth(values[idx]+rm, f.Width)

			observation := roundInv(rin, round)
			updated[idx] = maskWidth(calUpModel(observation, model[idx], modelValue), f.Width)
			values[idx] = maskWidth(observation, f.Width)
		}
	}

	return updated
}

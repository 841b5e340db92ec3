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

import (
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fingerprint hashes a []uint32 slice cheaply for equality assertions on
// larger generated buffers, instead of dumping the whole slice into a
// failed-test diff.
func fingerprint(vs []uint32) uint64 {
	buf := make([]byte, len(vs)*4)
	for i, v := range vs {
		buf[4*i] = byte(v >> 24)
		buf[4*i+1] = byte(v >> 16)
		buf[4*i+2] = byte(v >> 8)
		buf[4*i+3] = byte(v)
	}
	return xxhash.Sum64(buf)
}

func TestCompressRawScenario(t *testing.T) {
	// Scenario 3: mode = RAW, samples = 3, input = [0x0102, 0x0304, 0x0506].
	cfg := &Config{
		Mode:         ModeRaw,
		Input:        []uint32{0x0102, 0x0304, 0x0506},
		Samples:      3,
		BufferLength: 3,
		Output:       make([]byte, 8),
	}

	res, err := Compress(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint32(48), res.CmpSize)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, cfg.Output[:6])
}

func TestCompressDiffZeroScenario(t *testing.T) {
	// Scenario 1: mode = DIFF_ZERO, golomb_par = 4, spill = 8, round = 0,
	// input = [10, 12, 9, 9]. After diff: [10, 2, -3, 0]; mapped:
	// [20, 4, 5, 0], then biased by +1 for zero-escape to [21, 5, 6, 1];
	// 21 >= spill takes the escape path.
	cfg := &Config{
		Mode:         ModeDiffZero,
		GolombPar:    4,
		Spill:        8,
		Input:        []uint32{10, 12, 9, 9},
		Samples:      4,
		BufferLength: 16,
		Output:       make([]byte, 32),
	}

	res, err := Compress(cfg)
	require.NoError(t, err)
	assert.Zero(t, res.ErrBits)
	assert.NotZero(t, res.CmpSize)

	dec, err := Decompress(&DecompressConfig{
		Mode:       ModeDiffZero,
		GolombPar:  4,
		Spill:      8,
		Samples:    4,
		Compressed: cfg.Output,
		CmpSize:    res.CmpSize,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{10, 12, 9, 9}, dec.Decoded)
}

func TestCompressDiffMultiScenario(t *testing.T) {
	// Scenario 4: mode = DIFF_MULTI, input = [0], golomb_par = 4, spill = 2.
	// Mapped = 0 (< spill, no zero bias) => normal codeword.
	cfg := &Config{
		Mode:         ModeDiffMulti,
		GolombPar:    4,
		Spill:        2,
		Input:        []uint32{0},
		Samples:      1,
		BufferLength: 4,
		Output:       make([]byte, 8),
	}

	res, err := Compress(cfg)
	require.NoError(t, err)
	assert.Zero(t, res.ErrBits)

	dec, err := Decompress(&DecompressConfig{
		Mode:       ModeDiffMulti,
		GolombPar:  4,
		Spill:      2,
		Samples:    1,
		Compressed: cfg.Output,
		CmpSize:    res.CmpSize,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, dec.Decoded)
}

func TestCompressModelMultiScenario(t *testing.T) {
	// Scenario 2: mode = MODEL_MULTI, golomb_par = 3 (Golomb), spill = 16,
	// model_value = 8, input = [100], model = [95].
	cfg := &Config{
		Mode:         ModeModelMulti,
		GolombPar:    3,
		Spill:        16,
		ModelValue:   8,
		Input:        []uint32{100},
		Model:        []uint32{95},
		UpdatedModel: []uint32{0},
		Samples:      1,
		BufferLength: 4,
		Output:       make([]byte, 8),
	}

	res, err := Compress(cfg)
	require.NoError(t, err)
	assert.Zero(t, res.ErrBits)
	assert.Equal(t, calUpModel(100, 95, 8), cfg.UpdatedModel[0])
}

func TestCompressSmallBufferDetection(t *testing.T) {
	// Scenario 5: an output capacity one word smaller than needed returns
	// ErrSmallBuffer with SmallBufferErrBit set and CmpSize == 0. The
	// input is long enough that its payload spans more than one 32-bit word.
	cfg := &Config{
		Mode:         ModeDiffZero,
		GolombPar:    4,
		Spill:        8,
		Input:        []uint32{10, 12, 9, 9, 30, 2, 50, 7},
		Samples:      8,
		BufferLength: 16,
		Output:       make([]byte, 32),
	}
	full, err := Compress(cfg)
	require.NoError(t, err)

	// One 32-bit word short of what's needed: NewWriter rounds an odd
	// 16-bit word count up to an even one, so a single 16-bit word short
	// of a padded CmpSize would still fit.
	tooSmallWords := full.CmpSize/16 - 2
	cfg2 := &Config{
		Mode:         ModeDiffZero,
		GolombPar:    4,
		Spill:        8,
		Input:        []uint32{10, 12, 9, 9, 30, 2, 50, 7},
		Samples:      8,
		BufferLength: tooSmallWords,
		Output:       make([]byte, 32),
	}

	res, err := Compress(cfg2)
	require.True(t, errors.Is(err, ErrSmallBuffer))
	assert.NotZero(t, res.ErrBits&SmallBufferErrBit)
	assert.Zero(t, res.CmpSize)
}

func TestRoundTripAllShapesAndModes(t *testing.T) {
	type shapeCase struct {
		shape   ShapeID
		nfields int
	}
	shapes := []shapeCase{
		{ShapeU16, 1},
		{ShapeU32, 1},
		{ShapeSFX, 2},
		{ShapeSFXEFX, 3},
		{ShapeSFXNCOB, 4},
		{ShapeSFXEFXNCOBECOB, 7},
	}

	modesByShape := map[ShapeID][]Mode{
		ShapeU16:             {ModeDiffZero, ModeDiffMulti, ModeModelZero, ModeModelMulti},
		ShapeU32:             {ModeDiffZero32, ModeDiffMulti32, ModeModelZero32, ModeModelMulti32},
		ShapeSFX:             {ModeDiffZeroSFX, ModeDiffMultiSFX, ModeModelZeroSFX, ModeModelMultiSFX},
		ShapeSFXEFX:          {ModeDiffZeroSFXEFX, ModeModelMultiSFXEFX},
		ShapeSFXNCOB:         {ModeDiffZeroSFXNCOB, ModeModelMultiSFXNCOB},
		ShapeSFXEFXNCOBECOB:  {ModeDiffZeroSFXEFXNCOBECOB, ModeModelMultiSFXEFXNCOBECOB},
	}

	for _, sc := range shapes {
		for _, mode := range modesByShape[sc.shape] {
			mode := mode
			t.Run(mode.String(), func(t *testing.T) {
				const samples = 6
				input := make([]uint32, samples*sc.nfields)
				model := make([]uint32, samples*sc.nfields)
				fields := sc.shape.Fields()
				for i := range input {
					// Each value must fit its field (exp_flags is 8 bits).
					input[i] = maskWidth(uint32(i*37+11)%5000, fields[i%sc.nfields].Width)
					model[i] = uint32(i*13+3) % 5000
				}
				originalHash := fingerprint(input)

				cfg := &Config{
					Mode:         mode,
					GolombPar:    4,
					Spill:        64,
					ModelValue:   8,
					Samples:      samples,
					BufferLength: 4096,
					Input:        append([]uint32(nil), input...),
					Model:        model,
					// UpdatedModel is distinct from Model so the original
					// model buffer survives for the Decompress call below
					// to start from the same prior state the encoder did.
					UpdatedModel: make([]uint32, len(model)),
					Output:       make([]byte, 8192),
				}

				res, err := Compress(cfg)
				require.NoError(t, err)
				assert.Zero(t, res.ErrBits)

				dec, err := Decompress(&DecompressConfig{
					Mode:       mode,
					GolombPar:  4,
					Spill:      64,
					ModelValue: 8,
					Samples:    samples,
					Model:      model,
					Compressed: cfg.Output,
					CmpSize:    res.CmpSize,
				})
				require.NoError(t, err)

				assert.Equal(t, originalHash, fingerprint(input), "Compress must not further mutate a copy taken before the call")
				assert.Equal(t, input, dec.Decoded)
			})
		}
	}
}

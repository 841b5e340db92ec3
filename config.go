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

// Config bundles one compression call's parameters and buffers. It plays
// the role of struct cmp_cfg in the source library: a plain, allocation-
// free value the caller constructs and owns. There is no builder: callers
// assemble a Config with a struct literal and call Validate before
// passing it to Compress, exactly as the original validates cfg before
// icu_compress_data touches any buffer.
//
// Input, Model and UpdatedModel are flattened, field-major cell arrays:
// one uint32 per field of every sample, in the order Mode's shape lists
// them (see ShapeID.Fields). Output is the raw byte buffer the bitstream
// is packed into.
type Config struct {
	Mode Mode

	GolombPar  uint32
	Spill      uint32
	ModelValue uint32
	Round      uint32

	Samples      uint32
	BufferLength uint32 // output capacity, in 16-bit words

	Input        []uint32
	Model        []uint32
	UpdatedModel []uint32
	Output       []byte

	// Log receives validator warnings and fatal dispatcher diagnostics.
	// A nil Log silently discards them.
	Log Logger
}

// Validate runs every check from spec section 4.1 (no short-circuiting
// except where the spec names one) and returns a *ValidationError
// describing every problem found, or nil if the configuration is usable.
// Validate never mutates any buffer.
//
// The one check Validate resolves before any other is mode recognition:
// every later check reads fields off the Descriptor that c.Mode selects
// (Pre, Shape), so an unrecognized mode has no Descriptor for them to
// read. That dependency — not a choice to short-circuit the way raw mode
// explicitly does — is why mode recognition is checked first.
func (c *Config) Validate() error {
	var bits uint32
	count := 0

	fail := func(bit uint32) {
		bits |= bit
		count++
	}

	if c.Mode >= modeCount {
		fail(CmpModeErrBit)
		return &ValidationError{ErrBits: bits, Count: count}
	}

	desc, _ := descriptorFor(c.Mode)

	if c.Input == nil {
		fail(CmpParErrBit)
	}

	if c.Output == nil {
		fail(CmpParErrBit)
	}

	if c.Samples == 0 {
		warnf(c.Log, "cmp: samples == 0, nothing to compress")
		if count > 0 {
			return &ValidationError{ErrBits: bits, Count: count}
		}
		return nil
	}

	if c.BufferLength == 0 {
		fail(SmallBufferErrBit)
	}

	if desc.Pre == preProcModel {
		if c.Model == nil {
			fail(Ap1CmpParErrBit)
		} else if overlapsU32(c.Model, c.Input) {
			fail(Ap1CmpParErrBit)
		}

		if c.UpdatedModel != nil && overlapsU32(c.UpdatedModel, c.Input) {
			fail(Ap2CmpParErrBit)
		}
	}

	if rawModeIsUsed(c.Mode) {
		if c.Samples > c.BufferLength {
			fail(SmallBufferErrBit)
		}
		if count > 0 {
			return &ValidationError{ErrBits: bits, Count: count}
		}
		return nil
	}

	if desc.Pre == preProcModel && c.ModelValue > MaxModelValue {
		fail(ModelValueErrBit)
	}

	if c.GolombPar < MinIcuGolombPar || c.GolombPar > MaxIcuGolombPar {
		fail(CmpParErrBit)
	}

	maxSpill, err := MaxSpill(c.GolombPar, c.Mode)
	if err != nil {
		fail(CmpParErrBit)
	} else if c.Spill < MinIcuSpill || c.Spill > maxSpill {
		fail(CmpParErrBit)
	}

	if c.Round > MaxIcuRound {
		fail(CmpParErrBit)
	}

	stillFitsHeuristic(c, desc)

	if count > 0 {
		return &ValidationError{ErrBits: bits, Count: count}
	}
	return nil
}

// stillFitsHeuristic mirrors the source's stale "samples * size_of_sample
// < buffer_length * 2/3" comparison: design note §9 flags its unit
// mismatch explicitly and says to keep it as a warning only, never a hard
// check. We honor that by logging, not failing, when the heuristic trips.
func stillFitsHeuristic(c *Config, desc Descriptor) {
	sampleBytes := desc.Shape.SampleBytes()
	if sampleBytes == 0 {
		return
	}
	if uint64(c.Samples)*uint64(sampleBytes) < uint64(c.BufferLength)*2/3 {
		warnf(c.Log, "cmp: output buffer (%d 16-bit words) looks oversized for %d samples of %d bytes; check golomb_par/spill tuning", c.BufferLength, c.Samples, sampleBytes)
	}
}

// overlapsU32 reports whether a and b are backed by overlapping memory.
// Input/Model/UpdatedModel are the only same-typed ([]uint32) buffers the
// aliasing rules of spec section 3 need to guard at runtime: Output is a
// []byte, a different element type that cannot alias a []uint32 slice
// without unsafe trickery neither this package nor a well-behaved caller
// would use, so Go's type system enforces that half of the invariant for
// free.
func overlapsU32(a, b []uint32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	aStart := &a[0]
	bStart := &b[0]
	aEnd := &a[len(a)-1]
	bEnd := &b[len(b)-1]

	return ptrLE(aStart, bEnd) && ptrLE(bStart, aEnd)
}

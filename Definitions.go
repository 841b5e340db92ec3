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

// Package cmp implements the PLATO RDCU on-board compression core: a
// deterministic, allocation-free pipeline that pre-processes (lossy
// rounding, differencing or model prediction), maps signed residuals to an
// unsigned range, and entropy-codes the result as Rice or Golomb codewords
// packed into a big-endian bitstream.
//
// The package is organized the way a chunk-level container would use it:
// cmp holds the pipeline and its configuration, cmp/bitstream holds the
// big-endian bit packer, and cmp/entropy holds the Rice/Golomb codeword
// algebra. Chunk-level container framing, the RDCU hardware accelerator
// driver and any CLI surface are explicitly out of scope; the only contract
// with an outer collaborator is a validated Config and a Result.
package cmp

// Error bits deposited into Result.ErrBits. Each is independent; a single
// call may set more than one.
const (
	CmpModeErrBit uint32 = 1 << iota
	ModelValueErrBit
	CmpParErrBit
	Ap1CmpParErrBit
	Ap2CmpParErrBit
	SmallBufferErrBit
)

// Parameter bounds shared by the validator, the encoder and the decoder.
const (
	MinIcuGolombPar = 1
	MaxIcuGolombPar = 0xFFFF // fits in 16 bits, per spec ceiling note
	MinIcuSpill     = 2
	MaxModelValue   = 16
	MaxIcuRound     = 3

	// GolombParExposureFlags is the fixed Golomb parameter used for the
	// exp_flags field of structured shapes, independent of Config.GolombPar.
	GolombParExposureFlags = 1
)

// Logger is the minimal structured-logging surface the pipeline calls into
// for validator warnings and fatal dispatcher errors, replacing the
// original library's single non-reentrant debug-print scratch buffer. A nil
// Logger silently discards events, mirroring the original's optional `info`
// pointer being allowed to be NULL.
type Logger interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

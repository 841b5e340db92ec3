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

// Result mirrors the info record the original interface writes compression
// outcomes into: the error bitset, the compressed size, and the
// configuration parameters the call actually used. Compress always
// returns a Result, even on error — callers inspect ErrBits rather
// than relying solely on the returned error value, matching info being
// populated even on failure in the source interface.
type Result struct {
	// ErrBits is the OR of every *ErrBit constant raised during this
	// call. Zero means success.
	ErrBits uint32

	// CmpSize is the compressed payload size, in bits. Zero after a
	// capacity error.
	CmpSize uint32

	Mode       Mode
	GolombPar  uint32
	Spill      uint32
	ModelValue uint32
	Round      uint32
	Samples    uint32
}

// CmpSizeBytes returns the byte length of the compressed payload,
// ⌈CmpSize/32⌉*4, matching spec section 6's bitstream size rule.
func (r Result) CmpSizeBytes() uint32 {
	return ((r.CmpSize + 31) / 32) * 4
}

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

// Chunk-container header size constants. cmp_chunk.h names these macros
// (NON_IMAGETTE_HEADER_SIZE, CMP_COLLECTION_FILD_SIZE, COLLECTION_HDR_SIZE,
// CMP_ENTITY_MAX_SIZE) but the retrieved excerpt did not carry their
// values, and chunk-level container framing itself is out of this
// package's scope (spec section 1). These are implementation-defined,
// chosen to be self-consistent and documented in DESIGN.md, purely so
// CompressChunkSizeBound can exist as the pure function spec section 6
// names.
const (
	NonImagetteHeaderSize  = 32  // bytes
	CollectionHdrSize      = 12  // bytes, included in CollectionFieldSize below
	CollectionFieldSize    = CollectionHdrSize + 4
	CmpEntityMaxSize       = 1 << 24 // bytes
)

// roundUp4 rounds x up to the next multiple of 4.
func roundUp4(x uint32) uint32 {
	return (x + 3) &^ 3
}

// CompressChunkSizeBound returns an upper bound, in bytes, on the
// compressed size of a chunk formed by concatenating numCol collections
// whose combined raw size is chunkSize bytes. It returns 0 when numCol is
// non-positive, chunkSize is below the minimum a chunk header could
// describe, or the computed bound would exceed CmpEntityMaxSize — per
// spec section 6 / testable scenario 6.
func CompressChunkSizeBound(chunkSize uint32, numCol int32) uint32 {
	if numCol <= 0 {
		return 0
	}

	if chunkSize < NonImagetteHeaderSize {
		return 0
	}

	bound := roundUp4(NonImagetteHeaderSize + uint32(numCol)*CollectionFieldSize + chunkSize)
	if bound > CmpEntityMaxSize {
		return 0
	}

	return bound
}

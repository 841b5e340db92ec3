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
	"github.com/dloidolt/plato-rdcu/bitstream"
	"github.com/dloidolt/plato-rdcu/entropy"
)

// recordCodec assembles the entropy coder(s) and escape policy for one
// compression or decompression call: a coder built from the configured
// golomb_par for ordinary fields, and a second one pinned to
// GolombParExposureFlags for exp_flags fields — the single-bit-cursor
// stand-in for the source library's two-encoder-state stitching described
// in SPEC_FULL.md section 4.
type recordCodec struct {
	fields []Field
	normal entropy.Coder
	expFl  entropy.Coder
	spill  uint32
	escape escapeMech
}

func newRecordCodec(desc Descriptor, golombPar, spill uint32) (*recordCodec, error) {
	normal, err := entropy.NewCoder(golombPar)
	if err != nil {
		return nil, err
	}

	expFl, err := entropy.NewCoder(GolombParExposureFlags)
	if err != nil {
		return nil, err
	}

	return &recordCodec{
		fields: desc.Shape.Fields(),
		normal: normal,
		expFl:  expFl,
		spill:  spill,
		escape: desc.Escape,
	}, nil
}

func (rc *recordCodec) coderFor(f Field) entropy.Coder {
	if f.FixedGolomb {
		return rc.expFl
	}
	return rc.normal
}

// encodeSample writes one sample's fields, starting at input[base], in
// field order, and returns the number of bits written.
func (rc *recordCodec) encodeSample(w *bitstream.Writer, input []uint32, base int) (uint, error) {
	var total uint

	for j, f := range rc.fields {
		n, err := encodeValue(w, rc.coderFor(f), input[base+j], f.Width, rc.spill, rc.escape)
		if err != nil {
			return total, err
		}
		total += n
	}

	return total, nil
}

// decodeSample reads one sample's fields into values[base:base+len(fields)].
func (rc *recordCodec) decodeSample(r *bitstream.Reader, values []uint32, base int) error {
	for j, f := range rc.fields {
		v, err := decodeValue(r, rc.coderFor(f), f.Width, rc.spill, rc.escape)
		if err != nil {
			return err
		}
		values[base+j] = v
	}

	return nil
}

// encodeValue writes the codeword for one mapped field value u, applying
// the escape policy of spec section 4.4 before falling back to the
// ordinary Rice/Golomb codeword.
func encodeValue(w *bitstream.Writer, coder entropy.Coder, u uint32, width uint, spill uint32, escape escapeMech) (uint, error) {
	switch escape {
	case escapeZero:
		if u == 0 || u >= spill {
			n1, err := coder.Encode(w, 0)
			if err != nil {
				return 0, err
			}
			n2, err := w.PutBits(u, width)
			if err != nil {
				return 0, err
			}
			return n1 + n2, nil
		}
		return coder.Encode(w, u)

	case escapeMulti:
		if u >= spill {
			d := u - spill
			offset := calMultiOffset(d)
			n1, err := coder.Encode(w, spill+offset)
			if err != nil {
				return 0, err
			}
			bits := (offset + 1) * 2
			n2, err := w.PutBits(d, uint(bits))
			if err != nil {
				return 0, err
			}
			return n1 + n2, nil
		}
		return coder.Encode(w, u)

	default:
		return coder.Encode(w, u)
	}
}

// decodeValue is the mirror image of encodeValue.
func decodeValue(r *bitstream.Reader, coder entropy.Coder, width uint, spill uint32, escape escapeMech) (uint32, error) {
	v, err := coder.Decode(r)
	if err != nil {
		return 0, err
	}

	switch escape {
	case escapeZero:
		if v != 0 {
			return v, nil
		}
		return r.GetBits(width)

	case escapeMulti:
		if v < spill {
			return v, nil
		}
		offset := v - spill
		bits := (offset + 1) * 2
		d, err := r.GetBits(uint(bits))
		if err != nil {
			return 0, err
		}
		return spill + d, nil

	default:
		return v, nil
	}
}

// encodeRaw writes every field of every sample verbatim, in field order,
// with no entropy coding — the raw-mode path (a plain big-endian memcpy
// in the source library).
func encodeRaw(w *bitstream.Writer, shape ShapeID, input []uint32, samples uint32) error {
	fields := shape.Fields()
	nf := len(fields)

	for i := 0; i < int(samples); i++ {
		base := i * nf
		for j, f := range fields {
			if _, err := w.PutBits(input[base+j], f.Width); err != nil {
				return err
			}
		}
	}

	return nil
}

// decodeRaw is the mirror image of encodeRaw.
func decodeRaw(r *bitstream.Reader, shape ShapeID, samples uint32) ([]uint32, error) {
	fields := shape.Fields()
	nf := len(fields)
	out := make([]uint32, int(samples)*nf)

	for i := 0; i < int(samples); i++ {
		base := i * nf
		for j, f := range fields {
			v, err := r.GetBits(f.Width)
			if err != nil {
				return nil, err
			}
			out[base+j] = v
		}
	}

	return out, nil
}

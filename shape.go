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

// ShapeID is the closed set of sample record layouts the codec recognizes.
// F_FX is an alias of U32 for pre-processing purposes and does not get its
// own ShapeID; the FFX modes map to ShapeU32, and every stage (sizeOfASample
// included) treats them exactly as U32.
type ShapeID uint8

const (
	ShapeU16 ShapeID = iota
	ShapeU32
	ShapeSFX
	ShapeSFXEFX
	ShapeSFXNCOB
	ShapeSFXEFXNCOBECOB
)

// Field describes one member of a sample record: its bit width, whether it
// is biased by +1 under the zero-escape mechanism, and whether it is always
// encoded with GolombParExposureFlags rather than the configured
// Config.GolombPar.
type Field struct {
	Name        string
	Width       uint
	Biased      bool
	FixedGolomb bool
}

var shapeFields = map[ShapeID][]Field{
	ShapeU16: {
		{Name: "v", Width: 16, Biased: true},
	},
	ShapeU32: {
		{Name: "v", Width: 32, Biased: true},
	},
	ShapeSFX: {
		{Name: "exp_flags", Width: 8, FixedGolomb: true},
		{Name: "fx", Width: 32, Biased: true},
	},
	ShapeSFXEFX: {
		{Name: "exp_flags", Width: 8, FixedGolomb: true},
		{Name: "fx", Width: 32, Biased: true},
		{Name: "efx", Width: 32, Biased: true},
	},
	ShapeSFXNCOB: {
		{Name: "exp_flags", Width: 8, FixedGolomb: true},
		{Name: "fx", Width: 32, Biased: true},
		{Name: "ncob_x", Width: 32, Biased: true},
		{Name: "ncob_y", Width: 32, Biased: true},
	},
	ShapeSFXEFXNCOBECOB: {
		{Name: "exp_flags", Width: 8, FixedGolomb: true},
		{Name: "fx", Width: 32, Biased: true},
		{Name: "ncob_x", Width: 32, Biased: true},
		{Name: "ncob_y", Width: 32, Biased: true},
		{Name: "efx", Width: 32, Biased: true},
		{Name: "ecob_x", Width: 32, Biased: true},
		{Name: "ecob_y", Width: 32, Biased: true},
	},
}

// Fields returns the field layout for shape, in emission order.
func (s ShapeID) Fields() []Field {
	return shapeFields[s]
}

// SampleWords returns the number of uint32 cells a single sample of shape
// occupies in a Config's flattened Input/Model/UpdatedModel slices.
func (s ShapeID) SampleWords() int {
	return len(shapeFields[s])
}

// SampleBytes returns the packed wire size in bytes of a single sample of
// shape — the sum of its field widths, byte-rounded. Used by the
// validator's buffer-size heuristic and by sizeOfASample.
func (s ShapeID) SampleBytes() int {
	bits := uint(0)
	for _, f := range shapeFields[s] {
		bits += f.Width
	}
	return int((bits + 7) / 8)
}

// sizeOfASample mirrors size_of_a_sample(cmp_mode) from the source library:
// the raw wire size in bytes of one sample under mode.
func sizeOfASample(mode Mode) (int, error) {
	d, err := descriptorFor(mode)
	if err != nil {
		return 0, err
	}
	return d.Shape.SampleBytes(), nil
}

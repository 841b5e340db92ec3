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

import "fmt"

// Mode selects the sample shape, the pre-processing strategy and the
// escape mechanism for a compression call. The set is closed; Descriptor
// rejects anything outside it.
type Mode uint8

const (
	ModeRaw Mode = iota
	ModeRawSFX

	ModeModelZero
	ModeModelMulti
	ModeModelZeroSFX
	ModeModelMultiSFX
	ModeModelZeroSFXEFX
	ModeModelMultiSFXEFX
	ModeModelZeroSFXNCOB
	ModeModelMultiSFXNCOB
	ModeModelZeroSFXEFXNCOBECOB
	ModeModelMultiSFXEFXNCOBECOB
	ModeModelZero32
	ModeModelMulti32
	ModeModelZeroFFX
	ModeModelMultiFFX

	ModeDiffZero
	ModeDiffMulti
	ModeDiffZeroSFX
	ModeDiffMultiSFX
	ModeDiffZeroSFXEFX
	ModeDiffMultiSFXEFX
	ModeDiffZeroSFXNCOB
	ModeDiffMultiSFXNCOB
	ModeDiffZeroSFXEFXNCOBECOB
	ModeDiffMultiSFXEFXNCOBECOB
	ModeDiffZero32
	ModeDiffMulti32
	ModeDiffZeroFFX
	ModeDiffMultiFFX

	modeCount
)

// preProc is the pre-processing strategy family a Mode selects.
type preProc uint8

const (
	preProcRaw preProc = iota
	preProcDiff
	preProcModel
)

// escapeMech is the outlier escape mechanism a Mode selects.
type escapeMech uint8

const (
	escapeNone escapeMech = iota
	escapeZero
	escapeMulti
)

// Descriptor names the shape, pre-processing strategy and escape mechanism
// a Mode maps to. It is the single mode -> behavior table design note §9
// asks for, replacing the giant per-stage switch statements of the source
// library.
type Descriptor struct {
	Mode    Mode
	Shape   ShapeID
	Pre     preProc
	Escape  escapeMech
}

var descriptors = [modeCount]Descriptor{
	ModeRaw:    {ModeRaw, ShapeU16, preProcRaw, escapeNone},
	ModeRawSFX: {ModeRawSFX, ShapeSFX, preProcRaw, escapeNone},

	ModeModelZero:               {ModeModelZero, ShapeU16, preProcModel, escapeZero},
	ModeModelMulti:              {ModeModelMulti, ShapeU16, preProcModel, escapeMulti},
	ModeModelZeroSFX:            {ModeModelZeroSFX, ShapeSFX, preProcModel, escapeZero},
	ModeModelMultiSFX:           {ModeModelMultiSFX, ShapeSFX, preProcModel, escapeMulti},
	ModeModelZeroSFXEFX:         {ModeModelZeroSFXEFX, ShapeSFXEFX, preProcModel, escapeZero},
	ModeModelMultiSFXEFX:        {ModeModelMultiSFXEFX, ShapeSFXEFX, preProcModel, escapeMulti},
	ModeModelZeroSFXNCOB:        {ModeModelZeroSFXNCOB, ShapeSFXNCOB, preProcModel, escapeZero},
	ModeModelMultiSFXNCOB:       {ModeModelMultiSFXNCOB, ShapeSFXNCOB, preProcModel, escapeMulti},
	ModeModelZeroSFXEFXNCOBECOB: {ModeModelZeroSFXEFXNCOBECOB, ShapeSFXEFXNCOBECOB, preProcModel, escapeZero},
	ModeModelMultiSFXEFXNCOBECOB: {ModeModelMultiSFXEFXNCOBECOB, ShapeSFXEFXNCOBECOB, preProcModel, escapeMulti},
	ModeModelZero32:  {ModeModelZero32, ShapeU32, preProcModel, escapeZero},
	ModeModelMulti32: {ModeModelMulti32, ShapeU32, preProcModel, escapeMulti},
	ModeModelZeroFFX: {ModeModelZeroFFX, ShapeU32, preProcModel, escapeZero},
	ModeModelMultiFFX: {ModeModelMultiFFX, ShapeU32, preProcModel, escapeMulti},

	ModeDiffZero:               {ModeDiffZero, ShapeU16, preProcDiff, escapeZero},
	ModeDiffMulti:              {ModeDiffMulti, ShapeU16, preProcDiff, escapeMulti},
	ModeDiffZeroSFX:            {ModeDiffZeroSFX, ShapeSFX, preProcDiff, escapeZero},
	ModeDiffMultiSFX:           {ModeDiffMultiSFX, ShapeSFX, preProcDiff, escapeMulti},
	ModeDiffZeroSFXEFX:         {ModeDiffZeroSFXEFX, ShapeSFXEFX, preProcDiff, escapeZero},
	ModeDiffMultiSFXEFX:        {ModeDiffMultiSFXEFX, ShapeSFXEFX, preProcDiff, escapeMulti},
	ModeDiffZeroSFXNCOB:        {ModeDiffZeroSFXNCOB, ShapeSFXNCOB, preProcDiff, escapeZero},
	ModeDiffMultiSFXNCOB:       {ModeDiffMultiSFXNCOB, ShapeSFXNCOB, preProcDiff, escapeMulti},
	ModeDiffZeroSFXEFXNCOBECOB: {ModeDiffZeroSFXEFXNCOBECOB, ShapeSFXEFXNCOBECOB, preProcDiff, escapeZero},
	ModeDiffMultiSFXEFXNCOBECOB: {ModeDiffMultiSFXEFXNCOBECOB, ShapeSFXEFXNCOBECOB, preProcDiff, escapeMulti},
	ModeDiffZero32:  {ModeDiffZero32, ShapeU32, preProcDiff, escapeZero},
	ModeDiffMulti32: {ModeDiffMulti32, ShapeU32, preProcDiff, escapeMulti},
	ModeDiffZeroFFX: {ModeDiffZeroFFX, ShapeU32, preProcDiff, escapeZero},
	ModeDiffMultiFFX: {ModeDiffMultiFFX, ShapeU32, preProcDiff, escapeMulti},
}

// modeNames mirrors the declaration order above for Mode.String(); it exists
// purely for test output and log messages, never for parsing.
var modeNames = [modeCount]string{
	ModeRaw:    "RAW",
	ModeRawSFX: "RAW_SFX",

	ModeModelZero:                "MODEL_ZERO",
	ModeModelMulti:               "MODEL_MULTI",
	ModeModelZeroSFX:             "MODEL_ZERO_SFX",
	ModeModelMultiSFX:            "MODEL_MULTI_SFX",
	ModeModelZeroSFXEFX:          "MODEL_ZERO_SFX_EFX",
	ModeModelMultiSFXEFX:         "MODEL_MULTI_SFX_EFX",
	ModeModelZeroSFXNCOB:         "MODEL_ZERO_SFX_NCOB",
	ModeModelMultiSFXNCOB:        "MODEL_MULTI_SFX_NCOB",
	ModeModelZeroSFXEFXNCOBECOB:  "MODEL_ZERO_SFX_EFX_NCOB_ECOB",
	ModeModelMultiSFXEFXNCOBECOB: "MODEL_MULTI_SFX_EFX_NCOB_ECOB",
	ModeModelZero32:              "MODEL_ZERO_32",
	ModeModelMulti32:             "MODEL_MULTI_32",
	ModeModelZeroFFX:             "MODEL_ZERO_FFX",
	ModeModelMultiFFX:            "MODEL_MULTI_FFX",

	ModeDiffZero:                "DIFF_ZERO",
	ModeDiffMulti:               "DIFF_MULTI",
	ModeDiffZeroSFX:             "DIFF_ZERO_SFX",
	ModeDiffMultiSFX:            "DIFF_MULTI_SFX",
	ModeDiffZeroSFXEFX:          "DIFF_ZERO_SFX_EFX",
	ModeDiffMultiSFXEFX:         "DIFF_MULTI_SFX_EFX",
	ModeDiffZeroSFXNCOB:         "DIFF_ZERO_SFX_NCOB",
	ModeDiffMultiSFXNCOB:        "DIFF_MULTI_SFX_NCOB",
	ModeDiffZeroSFXEFXNCOBECOB:  "DIFF_ZERO_SFX_EFX_NCOB_ECOB",
	ModeDiffMultiSFXEFXNCOBECOB: "DIFF_MULTI_SFX_EFX_NCOB_ECOB",
	ModeDiffZero32:              "DIFF_ZERO_32",
	ModeDiffMulti32:             "DIFF_MULTI_32",
	ModeDiffZeroFFX:             "DIFF_ZERO_FFX",
	ModeDiffMultiFFX:            "DIFF_MULTI_FFX",
}

func (m Mode) String() string {
	if m >= modeCount {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// descriptorFor looks up the Descriptor for mode. An error is returned for
// any value outside the closed Mode enum (an internal logic error if it
// ever reaches the dispatcher, since Validate should have already rejected
// it).
func descriptorFor(mode Mode) (Descriptor, error) {
	if mode >= modeCount {
		return Descriptor{}, fmt.Errorf("cmp: mode %d is not a recognized compression mode", mode)
	}
	return descriptors[mode], nil
}

func rawModeIsUsed(mode Mode) bool {
	return mode == ModeRaw || mode == ModeRawSFX
}

func modelModeIsUsed(mode Mode) bool {
	d, err := descriptorFor(mode)
	return err == nil && d.Pre == preProcModel
}

func diffModeIsUsed(mode Mode) bool {
	d, err := descriptorFor(mode)
	return err == nil && d.Pre == preProcDiff
}

func zeroEscapeMechIsUsed(mode Mode) bool {
	d, err := descriptorFor(mode)
	return err == nil && d.Escape == escapeZero
}

func multiEscapeMechIsUsed(mode Mode) bool {
	d, err := descriptorFor(mode)
	return err == nil && d.Escape == escapeMulti
}

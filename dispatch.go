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

	"github.com/dloidolt/plato-rdcu/bitstream"
)

// Compress runs the full four-stage pipeline described in spec section 2
// over cfg: validate, pre-process, map, entropy-encode and bit-pack. It
// always returns a Result, even on error, mirroring info being populated
// regardless of outcome in the source interface; callers distinguish
// success from failure via the returned error (compare with
// errors.Is(err, ErrSmallBuffer) or errors.As(err, &*ValidationError)).
func Compress(cfg *Config) (Result, error) {
	res := Result{
		Mode:       cfg.Mode,
		GolombPar:  cfg.GolombPar,
		Spill:      cfg.Spill,
		ModelValue: cfg.ModelValue,
		Round:      cfg.Round,
		Samples:    cfg.Samples,
	}

	if err := cfg.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			res.ErrBits = verr.ErrBits
		}
		return res, err
	}

	if cfg.Samples == 0 {
		return res, nil
	}

	desc, err := descriptorFor(cfg.Mode)
	if err != nil {
		errorf(cfg.Log, "%v", err)
		return res, err
	}

	w := bitstream.NewWriter(cfg.Output, cfg.BufferLength)

	if rawModeIsUsed(cfg.Mode) {
		if err := encodeRaw(w, desc.Shape, cfg.Input, cfg.Samples); err != nil {
			return failEncode(res, cfg.Log, err)
		}
	} else {
		switch desc.Pre {
		case preProcDiff:
			preprocessDiff(desc.Shape.Fields(), cfg.Input, cfg.Samples, cfg.Round)
		case preProcModel:
			preprocessModel(desc.Shape.Fields(), cfg.Input, cfg.Model, cfg.UpdatedModel, cfg.Samples, cfg.Round, cfg.ModelValue)
		}

		mapFields(desc.Shape.Fields(), cfg.Input, cfg.Samples, desc.Escape == escapeZero)

		rc, err := newRecordCodec(desc, cfg.GolombPar, cfg.Spill)
		if err != nil {
			errorf(cfg.Log, "%v", err)
			return res, internalError("%v", err)
		}

		nf := desc.Shape.SampleWords()
		for i := 0; i < int(cfg.Samples); i++ {
			if _, err := rc.encodeSample(w, cfg.Input, i*nf); err != nil {
				return failEncode(res, cfg.Log, err)
			}
		}

		// Only the entropy-coded stream is padded; a raw-mode payload is
		// exactly samples * sample size bits.
		if err := w.PadToWord32(); err != nil {
			return failEncode(res, cfg.Log, err)
		}
	}

	res.CmpSize = uint32(w.BitsWritten())
	return res, nil
}

// failEncode turns a bitstream write error into the Result/error pair the
// caller sees: a capacity error surfaces as ErrSmallBuffer with
// SmallBufferErrBit set and CmpSize cleared (spec section 7); anything
// else is an internal logic error.
func failEncode(res Result, log Logger, err error) (Result, error) {
	if errors.Is(err, bitstream.ErrSmallBuffer) {
		res.ErrBits |= SmallBufferErrBit
		res.CmpSize = 0
		return res, ErrSmallBuffer
	}

	errorf(log, "%v", err)
	return res, err
}

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
	"fmt"
)

// ErrSmallBuffer is the capacity-error sentinel (−2 in the original
// interface's negative-int numbering, here a sentinel error matched with
// errors.Is). It is returned whenever the output buffer cannot hold the
// compressed bitstream; SmallBufferErrBit is set on the returned Result
// and Result.CmpSize is left at zero.
var ErrSmallBuffer = errors.New("cmp: output buffer too small")

// ValidationError reports the configuration problems found by
// Config.Validate. ErrBits is the OR of every *ErrBit constant that
// applies; Count is the number of independent problems detected (the
// validator does not short-circuit on the first one, matching spec
// section 4.1's "all checks applied" rule).
type ValidationError struct {
	ErrBits uint32
	Count   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cmp: invalid configuration (%d problem(s), err bits 0x%x)", e.Count, e.ErrBits)
}

// internalError wraps a condition that should have been caught by
// Validate before reaching the dispatcher (an unrecognized Mode, for
// instance). Reaching this path is a logic error in the caller or in this
// package, not a data problem — spec section 7 calls these out as fatal.
func internalError(format string, args ...any) error {
	return fmt.Errorf("cmp: internal error: "+format, args...)
}

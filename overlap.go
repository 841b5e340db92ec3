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

import "unsafe"

// ptrLE reports whether a's address is less than or equal to b's. Slices
// guarantee elements of one backing array are laid out contiguously in
// address order, so this is enough to turn two [start, end] element
// pointers into a closed-range overlap test in overlapsU32. This is
// the one place the package reaches for unsafe: Go gives no portable way
// to order two pointers otherwise, and the alternative (demanding callers
// pass an explicit "these buffers alias" flag) would push a correctness
// obligation from buffer aliasing validation onto every caller.
func ptrLE(a, b *uint32) bool {
	return uintptr(unsafe.Pointer(a)) <= uintptr(unsafe.Pointer(b))
}

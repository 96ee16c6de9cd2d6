//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a row or column beyond the current bounds.
	// Seeing it means an invariant was broken somewhere upstream.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnsupportedChar is returned when inserting a line separator.
	ErrUnsupportedChar = errors.New("unsupported character")

	// ErrNotHandled is returned for events the editor leaves to its caller.
	ErrNotHandled = errors.New("event not handled by editor")
)

// An OutOfRangeError carries the offending index and the bound it broke.
type OutOfRangeError struct {
	What  string
	Index int
	Limit int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [0, %d)", e.What, e.Index, e.Limit)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

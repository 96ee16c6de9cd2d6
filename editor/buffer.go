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

// A Buffer holds the text being edited as a flat sequence of code points.
// Rows are separated by '\n'; the last row has no trailing separator of its
// own.
type Buffer struct {
	text []rune
}

func NewBuffer() *Buffer {
	return &Buffer{text: make([]rune, 0)}
}

// LoadBytes replaces the contents of the buffer.
func (b *Buffer) LoadBytes(bytes []byte) {
	b.text = []rune(string(bytes))
}

func (b *Buffer) Bytes() []byte {
	return []byte(string(b.text))
}

func (b *Buffer) String() string {
	return string(b.text)
}

func (b *Buffer) Runes() []rune {
	return b.text
}

func (b *Buffer) Len() int {
	return len(b.text)
}

// InsertCharacter inserts c before the code point at offset.
func (b *Buffer) InsertCharacter(offset int, c rune) error {
	if offset < 0 || offset > len(b.text) {
		return &OutOfRangeError{What: "offset", Index: offset, Limit: len(b.text) + 1}
	}
	b.text = append(b.text, 0)
	copy(b.text[offset+1:], b.text[offset:])
	b.text[offset] = c
	return nil
}

// Slice returns the code points in [start, end).
func (b *Buffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start >= end {
		return nil
	}
	return b.text[start:end]
}

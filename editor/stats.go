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

// LineStats caches the length of every row, in code points, excluding the
// line separator. It is the only source of row lengths used for navigation.
type LineStats struct {
	lengths []int
}

// BuildStats splits text on '\n' and records one length per segment.
// A trailing separator produces a trailing empty row.
func BuildStats(text []rune) *LineStats {
	s := &LineStats{lengths: make([]int, 0, 16)}
	n := 0
	for _, c := range text {
		if c == '\n' {
			s.lengths = append(s.lengths, n)
			n = 0
		} else {
			n++
		}
	}
	s.lengths = append(s.lengths, n)
	return s
}

func (s *LineStats) RowsNum() int {
	return len(s.lengths)
}

func (s *LineStats) LengthOf(row int) (int, error) {
	if row < 0 || row >= len(s.lengths) {
		return 0, &OutOfRangeError{What: "row", Index: row, Limit: len(s.lengths)}
	}
	return s.lengths[row], nil
}

// PreviousLength returns the length of the row above row, or 0 for row 0.
func (s *LineStats) PreviousLength(row int) int {
	if row == 0 {
		return 0
	}
	n, err := s.LengthOf(row - 1)
	if err != nil {
		panic(err)
	}
	return n
}

// Grow adds delta to the length of row.
func (s *LineStats) Grow(row, delta int) error {
	if row < 0 || row >= len(s.lengths) {
		return &OutOfRangeError{What: "row", Index: row, Limit: len(s.lengths)}
	}
	s.lengths[row] += delta
	return nil
}

// Offset translates (row, col) into an absolute offset into the text.
func (s *LineStats) Offset(row, col int) (int, error) {
	n, err := s.LengthOf(row)
	if err != nil {
		return 0, err
	}
	if col < 0 || col > n {
		return 0, &OutOfRangeError{What: "col", Index: col, Limit: n + 1}
	}
	offset := 0
	for _, l := range s.lengths[:row] {
		offset += l + 1
	}
	return offset + col, nil
}

// Len is the length of the text these stats describe.
func (s *LineStats) Len() int {
	total := len(s.lengths) - 1
	for _, l := range s.lengths {
		total += l
	}
	return total
}

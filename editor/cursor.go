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
	lined "github.com/timburks/lined/types"
)

// A Cursor is the caret position. Col may equal the row length, which puts
// the caret just past the last character of the row.
type Cursor struct {
	Row int
	Col int
}

func (c *Cursor) Position() lined.Point {
	return lined.Point{Row: c.Row, Col: c.Col}
}

func (c *Cursor) Reset() {
	c.Row = 0
	c.Col = 0
}

// Move applies one saturating step in direction. Up and Down always land in
// column 0.
func (c *Cursor) Move(direction lined.Direction, stats *LineStats) {
	switch direction {
	case lined.MoveUp:
		if c.Row > 0 {
			c.Row--
			c.Col = 0
		}
	case lined.MoveDown:
		if !c.lastRow(stats) {
			c.Row++
			c.Col = 0
		}
	case lined.MoveRight:
		c.advance(stats)
	case lined.MoveLeft:
		c.back(stats)
	}
}

func (c *Cursor) advance(stats *LineStats) {
	// the end of the last row is as far as we go
	if c.lastRow(stats) && c.lastCol(stats) {
		return
	}
	if c.lastCol(stats) {
		c.Row++
		c.Col = 0
	} else {
		c.Col++
	}
}

func (c *Cursor) back(stats *LineStats) {
	if c.Row == 0 && c.Col == 0 {
		return
	}
	if c.Col == 0 {
		c.Col = stats.PreviousLength(c.Row)
		c.Row--
	} else {
		c.Col--
	}
}

func (c *Cursor) lastRow(stats *LineStats) bool {
	return c.Row == stats.RowsNum()-1
}

func (c *Cursor) lastCol(stats *LineStats) bool {
	n, err := stats.LengthOf(c.Row)
	if err != nil {
		panic(err)
	}
	return c.Col == n
}

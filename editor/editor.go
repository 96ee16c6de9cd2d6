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
	"fmt"

	lined "github.com/timburks/lined/types"
)

// The Editor owns a Buffer and keeps its line statistics, cursor and
// viewport consistent with it.
type Editor struct {
	buffer   *Buffer
	stats    *LineStats
	cursor   Cursor
	viewport *Viewport
}

// NewEditor creates an editor for text whose viewport shows height rows.
func NewEditor(text string, height int) *Editor {
	e := &Editor{}
	e.buffer = NewBuffer()
	e.viewport = NewViewport(height)
	e.Load(text)
	return e
}

// Load replaces the text and puts the cursor and viewport back at the top.
func (e *Editor) Load(text string) {
	e.buffer.LoadBytes([]byte(text))
	e.stats = BuildStats(e.buffer.Runes())
	e.cursor.Reset()
	e.viewport.Reset()
}

// HandleEvent applies ev. It reports true when ev asks to quit.
func (e *Editor) HandleEvent(ev lined.Event) (bool, error) {
	switch ev.Kind {
	case lined.EventQuit:
		return true, nil
	case lined.EventMove:
		e.MoveCursor(ev.Direction)
	case lined.EventInsert:
		return false, e.InsertChar(ev.Ch)
	case lined.EventNone:
	default:
		return false, ErrNotHandled
	}
	return false, nil
}

func (e *Editor) MoveCursor(direction lined.Direction) {
	e.cursor.Move(direction, e.stats)
	e.viewport.Follow(e.cursor.Row)
}

// InsertChar inserts c at the cursor and leaves the cursor just after it.
func (e *Editor) InsertChar(c rune) error {
	if c == '\n' || c == '\r' {
		return fmt.Errorf("insert %q: %w", c, ErrUnsupportedChar)
	}
	offset, err := e.stats.Offset(e.cursor.Row, e.cursor.Col)
	if err != nil {
		return err
	}
	if err := e.buffer.InsertCharacter(offset, c); err != nil {
		return err
	}
	if err := e.stats.Grow(e.cursor.Row, 1); err != nil {
		return err
	}
	e.cursor.Move(lined.MoveRight, e.stats)
	e.viewport.Follow(e.cursor.Row)
	return nil
}

// Render draws every visible row and places the caret.
func (e *Editor) Render(r lined.Renderer) {
	r.Clear()
	text := e.buffer.Runes()
	last := min(e.viewport.Upper, e.stats.RowsNum())
	start, err := e.stats.Offset(e.viewport.Lower, 0)
	if err == nil {
		for row := e.viewport.Lower; row < last; row++ {
			n := e.stats.lengths[row]
			for col, ch := range text[start : start+n] {
				r.PrintCell(row-e.viewport.Lower, col, ch)
			}
			start += n + 1
		}
	}
	r.SetCaret(e.cursor.Row-e.viewport.Lower, e.cursor.Col)
	r.Present()
}

func (e *Editor) Cursor() lined.Point {
	return e.cursor.Position()
}

// Window returns the visible row range [lower, upper).
func (e *Editor) Window() (lower, upper int) {
	return e.viewport.Lower, e.viewport.Upper
}

func (e *Editor) RowsNum() int {
	return e.stats.RowsNum()
}

func (e *Editor) RowLength(row int) (int, error) {
	return e.stats.LengthOf(row)
}

// Line returns the text of row without its separator.
func (e *Editor) Line(row int) (string, error) {
	start, err := e.stats.Offset(row, 0)
	if err != nil {
		return "", err
	}
	return string(e.buffer.Slice(start, start+e.stats.lengths[row])), nil
}

func (e *Editor) Text() string {
	return e.buffer.String()
}

func (e *Editor) Bytes() []byte {
	return e.buffer.Bytes()
}

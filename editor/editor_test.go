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
	"testing"

	"github.com/google/go-cmp/cmp"
	lined "github.com/timburks/lined/types"
)

type cell struct {
	Row, Col int
	Ch       rune
}

// frameRecorder captures the draw instructions of the last frame.
type frameRecorder struct {
	cells    []cell
	caret    lined.Point
	presents int
}

func (f *frameRecorder) Clear() { f.cells = nil }

func (f *frameRecorder) PrintCell(row, col int, ch rune) {
	f.cells = append(f.cells, cell{row, col, ch})
}

func (f *frameRecorder) SetCaret(row, col int) { f.caret = lined.Point{Row: row, Col: col} }

func (f *frameRecorder) Present() { f.presents++ }

func TestMoveAndInsert(t *testing.T) {
	e := NewEditor("ab\ncd", 10)
	for i := 0; i < 3; i++ {
		e.MoveCursor(lined.MoveRight)
	}
	if got := e.Cursor(); got != (lined.Point{Row: 1, Col: 0}) {
		t.Fatalf("cursor after three moves right: %+v", got)
	}
	if err := e.InsertChar('x'); err != nil {
		t.Fatalf("InsertChar: %v", err)
	}
	if text := e.Text(); text != "ab\nxcd" {
		t.Errorf("text after insert = %q, want %q", text, "ab\nxcd")
	}
	if n, _ := e.RowLength(1); n != 3 {
		t.Errorf("row 1 length = %d, want 3", n)
	}
	if got := e.Cursor(); got != (lined.Point{Row: 1, Col: 1}) {
		t.Errorf("cursor after insert: %+v, want {1 1}", got)
	}
}

func TestInsertGrowsOnlyCurrentRow(t *testing.T) {
	text := "first\nsecond\n\nfourth"
	for row := 0; row < 4; row++ {
		e := NewEditor(text, 10)
		for i := 0; i < row; i++ {
			e.MoveCursor(lined.MoveDown)
		}
		before := rowLengths(e)
		if err := e.InsertChar('Z'); err != nil {
			t.Fatalf("InsertChar on row %d: %v", row, err)
		}
		after := rowLengths(e)
		before[row]++
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("row lengths after insert on row %d (-want +got):\n%s", row, diff)
		}
		if got := len([]rune(e.Text())); got != e.stats.Len() {
			t.Errorf("buffer length %d disagrees with stats length %d", got, e.stats.Len())
		}
	}
}

func TestInsertAtEndOfBuffer(t *testing.T) {
	e := NewEditor("ab", 10)
	e.MoveCursor(lined.MoveRight)
	e.MoveCursor(lined.MoveRight)
	for _, c := range "cdé" {
		if err := e.InsertChar(c); err != nil {
			t.Fatalf("InsertChar(%q): %v", c, err)
		}
	}
	if e.Text() != "abcdé" {
		t.Errorf("text = %q", e.Text())
	}
	if got := e.Cursor(); got != (lined.Point{Row: 0, Col: 5}) {
		t.Errorf("cursor = %+v, want {0 5}", got)
	}
}

func TestInsertRejectsSeparators(t *testing.T) {
	e := NewEditor("ab", 10)
	for _, c := range []rune{'\n', '\r'} {
		if err := e.InsertChar(c); !errors.Is(err, ErrUnsupportedChar) {
			t.Errorf("InsertChar(%q) error = %v, want ErrUnsupportedChar", c, err)
		}
	}
	if e.Text() != "ab" || e.RowsNum() != 1 {
		t.Errorf("rejected insert changed the buffer: %q", e.Text())
	}
}

func TestHandleEvent(t *testing.T) {
	e := NewEditor("ab\ncd", 10)
	events := []lined.Event{
		lined.MoveEvent(lined.MoveDown),
		lined.InsertEvent('>'),
		{Kind: lined.EventNone},
	}
	for _, ev := range events {
		quit, err := e.HandleEvent(ev)
		if quit || err != nil {
			t.Fatalf("HandleEvent(%+v) = %v, %v", ev, quit, err)
		}
	}
	if e.Text() != "ab\n>cd" {
		t.Errorf("text = %q", e.Text())
	}
	if _, err := e.HandleEvent(lined.SaveEvent()); !errors.Is(err, ErrNotHandled) {
		t.Errorf("save event error = %v, want ErrNotHandled", err)
	}
	if quit, _ := e.HandleEvent(lined.QuitEvent()); !quit {
		t.Errorf("quit event did not report quit")
	}
}

func TestRenderVisibleRows(t *testing.T) {
	e := NewEditor("ab\nc\n\nde", 2)
	f := &frameRecorder{}
	e.Render(f)
	want := []cell{{0, 0, 'a'}, {0, 1, 'b'}, {1, 0, 'c'}}
	if diff := cmp.Diff(want, f.cells); diff != "" {
		t.Errorf("initial frame (-want +got):\n%s", diff)
	}
	if f.caret != (lined.Point{}) || f.presents != 1 {
		t.Errorf("caret %+v presents %d", f.caret, f.presents)
	}

	// walk down to the last row; the window follows
	for i := 0; i < 3; i++ {
		e.MoveCursor(lined.MoveDown)
	}
	e.MoveCursor(lined.MoveRight)
	e.Render(f)
	want = []cell{{1, 0, 'd'}, {1, 1, 'e'}}
	if diff := cmp.Diff(want, f.cells); diff != "" {
		t.Errorf("scrolled frame (-want +got):\n%s", diff)
	}
	if f.caret != (lined.Point{Row: 1, Col: 1}) {
		t.Errorf("scrolled caret = %+v, want {1 1}", f.caret)
	}
	if lower, upper := e.Window(); lower != 2 || upper != 4 {
		t.Errorf("window = [%d, %d), want [2, 4)", lower, upper)
	}
}

func TestRenderShortBuffer(t *testing.T) {
	e := NewEditor("", 5)
	f := &frameRecorder{}
	e.Render(f)
	if len(f.cells) != 0 {
		t.Errorf("empty buffer drew %v", f.cells)
	}
	if f.caret != (lined.Point{}) {
		t.Errorf("caret = %+v", f.caret)
	}
}

func TestLoadResetsState(t *testing.T) {
	e := NewEditor("a\nb\nc\nd", 2)
	for i := 0; i < 3; i++ {
		e.MoveCursor(lined.MoveDown)
	}
	e.Load("xyz")
	if got := e.Cursor(); got != (lined.Point{}) {
		t.Errorf("cursor after Load = %+v", got)
	}
	if lower, upper := e.Window(); lower != 0 || upper != 2 {
		t.Errorf("window after Load = [%d, %d)", lower, upper)
	}
	if line, _ := e.Line(0); line != "xyz" || e.RowsNum() != 1 {
		t.Errorf("after Load: line %q rows %d", line, e.RowsNum())
	}
}

func TestLine(t *testing.T) {
	e := NewEditor("one\n\nthree\n", 5)
	for row, want := range []string{"one", "", "three", ""} {
		got, err := e.Line(row)
		if err != nil || got != want {
			t.Errorf("Line(%d) = %q, %v; want %q", row, got, err, want)
		}
	}
	if _, err := e.Line(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Line(4) error = %v", err)
	}
}

func rowLengths(e *Editor) []int {
	lengths := make([]int, e.RowsNum())
	for i := range lengths {
		lengths[i], _ = e.RowLength(i)
	}
	return lengths
}

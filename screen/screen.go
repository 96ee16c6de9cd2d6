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
package screen

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	lined "github.com/timburks/lined/types"
)

var ErrUnknownBackend = errors.New("unknown terminal backend")

// A terminal is the part of a backend library that the session drives.
type terminal interface {
	init() error
	close()
	size() lined.Size
	clear()
	setCell(x, y int, ch rune)
	setCursor(x, y int)
	flush() error
	pollEvent(quit []rune) lined.Event
}

// A Session owns the terminal from Open until Close. Close restores the
// terminal mode and is safe to call more than once, so callers can defer it
// right after Open.
type Session struct {
	term   terminal
	quit   []rune
	closed bool
}

// Open puts the terminal into raw mode using the named backend ("termbox"
// or "tcell"). Runes in quit are reported as quit events instead of text.
func Open(backend string, quit []rune) (*Session, error) {
	var t terminal
	switch backend {
	case "termbox":
		t = &termboxTerminal{}
	case "tcell":
		t = &tcellTerminal{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err := t.init(); err != nil {
		return nil, fmt.Errorf("open %s terminal: %w", backend, err)
	}
	return &Session{term: t, quit: quit}, nil
}

func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.term.close()
}

func (s *Session) Size() lined.Size {
	return s.term.size()
}

// Input returns the session's event stream.
func (s *Session) Input() lined.InputSource {
	return &input{s}
}

// Renderer returns a renderer that draws on the session's terminal.
func (s *Session) Renderer() lined.Renderer {
	return &renderer{s}
}

type input struct {
	s *Session
}

func (in *input) NextEvent() lined.Event {
	return in.s.term.pollEvent(in.s.quit)
}

type renderer struct {
	s *Session
}

func (r *renderer) Clear() {
	r.s.term.clear()
}

// PrintCell drops cells outside the terminal. Lines are not wrapped.
func (r *renderer) PrintCell(row, col int, ch rune) {
	size := r.s.term.size()
	if row < 0 || col < 0 || row >= size.Rows || col >= size.Cols {
		return
	}
	r.s.term.setCell(col, row, printable(ch))
}

func (r *renderer) SetCaret(row, col int) {
	r.s.term.setCursor(col, row)
}

func (r *renderer) Present() {
	if err := r.s.term.flush(); err != nil {
		log.Printf("render: %v", err)
	}
}

// printable replaces runes that would not occupy a cell.
func printable(ch rune) rune {
	if runewidth.RuneWidth(ch) == 0 {
		return '?'
	}
	return ch
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func isQuitRune(ch rune, quit []rune) bool {
	for _, q := range quit {
		if ch == q {
			return true
		}
	}
	return false
}

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
	"github.com/nsf/termbox-go"
	lined "github.com/timburks/lined/types"
)

type termboxTerminal struct{}

func (t *termboxTerminal) init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return nil
}

func (t *termboxTerminal) close() {
	termbox.Close()
}

func (t *termboxTerminal) size() lined.Size {
	cols, rows := termbox.Size()
	return lined.Size{Rows: rows, Cols: cols}
}

func (t *termboxTerminal) clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *termboxTerminal) setCell(x, y int, ch rune) {
	termbox.SetCell(x, y, ch, termbox.ColorDefault, termbox.ColorDefault)
}

func (t *termboxTerminal) setCursor(x, y int) {
	termbox.SetCursor(x, y)
}

func (t *termboxTerminal) flush() error {
	return termbox.Flush()
}

func (t *termboxTerminal) pollEvent(quit []rune) lined.Event {
	return termboxEvent(termbox.PollEvent(), quit)
}

func termboxEvent(event termbox.Event, quit []rune) lined.Event {
	if event.Type != termbox.EventKey {
		return lined.Event{}
	}
	if event.Ch != 0 {
		if isQuitRune(event.Ch, quit) {
			return lined.QuitEvent()
		}
		return lined.InsertEvent(event.Ch)
	}
	switch event.Key {
	case termbox.KeyArrowUp:
		return lined.MoveEvent(lined.MoveUp)
	case termbox.KeyArrowDown:
		return lined.MoveEvent(lined.MoveDown)
	case termbox.KeyArrowLeft:
		return lined.MoveEvent(lined.MoveLeft)
	case termbox.KeyArrowRight:
		return lined.MoveEvent(lined.MoveRight)
	case termbox.KeyEsc, termbox.KeyCtrlC, termbox.KeyCtrlQ:
		return lined.QuitEvent()
	case termbox.KeyCtrlS:
		return lined.SaveEvent()
	case termbox.KeySpace:
		if isQuitRune(' ', quit) {
			return lined.QuitEvent()
		}
		return lined.InsertEvent(' ')
	default:
		return lined.Event{}
	}
}

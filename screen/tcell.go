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
	"github.com/gdamore/tcell/v2"
	lined "github.com/timburks/lined/types"
)

type tcellTerminal struct {
	screen tcell.Screen
}

func (t *tcellTerminal) init() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	t.screen = s
	return nil
}

func (t *tcellTerminal) close() {
	t.screen.Fini()
}

func (t *tcellTerminal) size() lined.Size {
	cols, rows := t.screen.Size()
	return lined.Size{Rows: rows, Cols: cols}
}

func (t *tcellTerminal) clear() {
	t.screen.Clear()
}

func (t *tcellTerminal) setCell(x, y int, ch rune) {
	t.screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
}

func (t *tcellTerminal) setCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *tcellTerminal) flush() error {
	t.screen.Show()
	return nil
}

func (t *tcellTerminal) pollEvent(quit []rune) lined.Event {
	return tcellEvent(t.screen.PollEvent(), quit)
}

func tcellEvent(event tcell.Event, quit []rune) lined.Event {
	// PollEvent returns nil once the screen is finalized
	if event == nil {
		return lined.QuitEvent()
	}
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return lined.Event{}
	}
	switch ev.Key() {
	case tcell.KeyRune:
		ch := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch ch {
			case 'c', 'q':
				return lined.QuitEvent()
			case 's':
				return lined.SaveEvent()
			}
			return lined.Event{}
		}
		if isQuitRune(ch, quit) {
			return lined.QuitEvent()
		}
		return lined.InsertEvent(ch)
	case tcell.KeyUp:
		return lined.MoveEvent(lined.MoveUp)
	case tcell.KeyDown:
		return lined.MoveEvent(lined.MoveDown)
	case tcell.KeyLeft:
		return lined.MoveEvent(lined.MoveLeft)
	case tcell.KeyRight:
		return lined.MoveEvent(lined.MoveRight)
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return lined.QuitEvent()
	case tcell.KeyCtrlS:
		return lined.SaveEvent()
	default:
		return lined.Event{}
	}
}

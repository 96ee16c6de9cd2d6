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
package types

import "fmt"

// Move directions
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
	MoveRight
	MoveLeft
)

func (d Direction) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveRight:
		return "right"
	case MoveLeft:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name ("up", "down", "left", "right").
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "up":
		return MoveUp, true
	case "down":
		return MoveDown, true
	case "right":
		return MoveRight, true
	case "left":
		return MoveLeft, true
	}
	return 0, false
}

// Event kinds
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventMove
	EventInsert
	EventSave
)

// An Event is an abstract input event, independent of the terminal backend
// that produced it.
type Event struct {
	Kind      EventKind
	Direction Direction // valid for EventMove
	Ch        rune      // valid for EventInsert
}

func QuitEvent() Event { return Event{Kind: EventQuit} }

func SaveEvent() Event { return Event{Kind: EventSave} }

func MoveEvent(d Direction) Event { return Event{Kind: EventMove, Direction: d} }

func InsertEvent(c rune) Event { return Event{Kind: EventInsert, Ch: c} }

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Renderer draws frames. All calls are fire-and-forget: implementations
// swallow their own failures.
type Renderer interface {
	Clear()
	PrintCell(row, col int, ch rune)
	SetCaret(row, col int)
	Present()
}

// An InputSource produces a blocking, sequential stream of events.
type InputSource interface {
	NextEvent() Event
}

// Storage loads and persists plain text.
type Storage interface {
	Load(path string) (string, error)
	Save(path string, text string) error
}

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
package commander

import (
	"errors"
	"fmt"
	"os"

	"github.com/steelseries/golisp"
	lined "github.com/timburks/lined/types"
)

// the commander that lisp primitives operate on
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("move-cursor", "1", MoveCursorImpl)
	golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	golisp.MakePrimitiveFunction("cursor-position", "0", CursorPositionImpl)
	golisp.MakePrimitiveFunction("window-bounds", "0", WindowBoundsImpl)
	golisp.MakePrimitiveFunction("row-count", "0", RowCountImpl)
	golisp.MakePrimitiveFunction("row-length", "1", RowLengthImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
	golisp.MakePrimitiveFunction("save-buffer", "0", SaveBufferImpl)
	golisp.MakePrimitiveFunction("quit-editor", "0", QuitEditorImpl)
}

func pair(a, b int) *golisp.Data {
	return golisp.InternalMakeList(golisp.IntegerWithValue(int64(a)), golisp.IntegerWithValue(int64(b)))
}

func cursorList() *golisp.Data {
	p := active.editor.Cursor()
	return pair(p.Row, p.Col)
}

func MoveCursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("move-cursor requires a string argument")
	}
	direction, ok := lined.ParseDirection(golisp.StringValue(val))
	if !ok {
		return nil, fmt.Errorf("move-cursor: unknown direction %q", golisp.StringValue(val))
	}
	active.editor.MoveCursor(direction)
	return cursorList(), nil
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-text requires a string argument")
	}
	for _, c := range golisp.StringValue(val) {
		if err := active.editor.InsertChar(c); err != nil {
			return nil, err
		}
	}
	return cursorList(), nil
}

func CursorPositionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return cursorList(), nil
}

func WindowBoundsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return pair(active.editor.Window()), nil
}

func RowCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(active.editor.RowsNum())), nil
}

func RowLengthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("row-length requires an integer argument")
	}
	n, err := active.editor.RowLength(int(golisp.IntegerValue(val)))
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(n)), nil
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(active.editor.Text()), nil
}

func SaveBufferImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return nil, active.Save()
}

func QuitEditorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	active.running = false
	return nil, nil
}

// ParseEval evaluates one lisp expression against the commander's editor and
// returns the printed result.
func (c *Commander) ParseEval(command string) (string, error) {
	active = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEvalFile evaluates every expression in a script file in order.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return c.ParseEval("(begin\n" + string(b) + "\n)")
}

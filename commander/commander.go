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
	"log"

	"github.com/timburks/lined/editor"
	lined "github.com/timburks/lined/types"
)

// The Commander feeds input events to the Editor and redraws after each one.
type Commander struct {
	editor  *editor.Editor
	storage lined.Storage
	path    string // file the buffer is saved to
	running bool
}

func NewCommander(e *editor.Editor, s lined.Storage, path string) *Commander {
	return &Commander{editor: e, storage: s, path: path, running: true}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Editor() *editor.Editor {
	return c.editor
}

// Save writes the buffer to the commander's file.
func (c *Commander) Save() error {
	return c.storage.Save(c.path, c.editor.Text())
}

func (c *Commander) ProcessEvent(event lined.Event) error {
	if event.Kind == lined.EventSave {
		if err := c.Save(); err != nil {
			return err
		}
		log.Printf("wrote %s", c.path)
		return nil
	}
	quit, err := c.editor.HandleEvent(event)
	if quit {
		c.running = false
	}
	if errors.Is(err, editor.ErrUnsupportedChar) {
		return nil
	}
	return err
}

// Run processes events until one of them asks to quit. Each frame is drawn
// completely before the next event is read. Failed events are logged and
// the loop carries on.
func (c *Commander) Run(in lined.InputSource, out lined.Renderer) {
	for c.IsRunning() {
		c.editor.Render(out)
		if err := c.ProcessEvent(in.NextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}

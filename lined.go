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
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/timburks/lined/commander"
	"github.com/timburks/lined/config"
	"github.com/timburks/lined/editor"
	"github.com/timburks/lined/screen"
	"github.com/timburks/lined/storage"
)

const usage = "usage: lined [--config file] [--eval script] file"

// headless editors still need a viewport
const scriptHeight = 24

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var filename, script string
	configPath := config.DefaultPath()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // run a lisp script and exit
			i++
			if i == len(args) {
				fmt.Fprintln(os.Stderr, "No file specified for --eval option")
				return 2
			}
			script = args[i]
		case "--config":
			i++
			if i == len(args) {
				fmt.Fprintln(os.Stderr, "No file specified for --config option")
				return 2
			}
			configPath = args[i]
		default:
			if filename != "" {
				fmt.Fprintln(os.Stderr, usage)
				return 2
			}
			filename = args[i]
		}
	}
	if filename == "" {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Open a log file.
	if cfg.LogFile != config.NoLog {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// A file that doesn't exist yet is created when it is first saved.
	s := storage.NewFileStorage()
	text, err := s.Load(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if script != "" {
		c := commander.NewCommander(editor.NewEditor(text, scriptHeight), s, filename)
		result, err := c.ParseEvalFile(script)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(result)
		return 0
	}

	if !screen.IsTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, "lined: standard input is not a terminal")
		return 1
	}
	session, err := screen.Open(cfg.Backend, cfg.Quit())
	if err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer session.Close()

	e := editor.NewEditor(text, session.Size().Rows)
	c := commander.NewCommander(e, s, filename)
	c.Run(session.Input(), session.Renderer())
	return 0
}

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
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const source = "testdata/gettysburg-address.txt"

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	s := NewFileStorage()
	text, err := s.Load(source)
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	final := filepath.Join(t.TempDir(), "final.txt")
	if err := s.Save(final, text); err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	want, _ := os.ReadFile(source)
	got, _ := os.ReadFile(final)
	if string(got) != string(want) {
		t.Errorf("saved file differs from %s", source)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewFileStorage().Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load of missing file: %v, want fs.ErrNotExist", err)
	}
}

func TestSaveKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("old"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := NewFileStorage().Save(path, "new"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0700 {
		t.Errorf("mode = %v, want 0700", info.Mode().Perm())
	}
	b, _ := os.ReadFile(path)
	if string(b) != "new" {
		t.Errorf("contents = %q", b)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestSaveToDirectoryFails(t *testing.T) {
	if err := NewFileStorage().Save(t.TempDir(), "x"); err == nil {
		t.Errorf("Save to a directory succeeded")
	}
}

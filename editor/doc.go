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

// Package editor implements the navigation model of lined: a text buffer,
// the per-row length statistics derived from it, the cursor that moves
// within those rows, and the viewport that keeps the cursor on screen.
// The Editor ties them together and is the only thing allowed to mutate
// them, one event at a time.
package editor

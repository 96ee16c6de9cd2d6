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

// A Viewport is the window of rows currently on screen: [Lower, Upper).
// Its height is fixed when it is created.
type Viewport struct {
	Lower int
	Upper int
}

func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{Lower: 0, Upper: height}
}

func (v *Viewport) Height() int {
	return v.Upper - v.Lower
}

func (v *Viewport) Contains(row int) bool {
	return row >= v.Lower && row < v.Upper
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() {
	v.Upper = v.Height()
	v.Lower = 0
}

// Follow slides the window by one row when the cursor has just stepped
// across one of its edges. The cursor moves at most one row per event, so a
// single shift always brings it back into view.
func (v *Viewport) Follow(row int) {
	if row == v.Upper {
		// scroll down
		v.Lower++
		v.Upper++
	} else if row+1 == v.Lower && v.Lower != 0 {
		// scroll up
		v.Lower--
		v.Upper--
	}
}

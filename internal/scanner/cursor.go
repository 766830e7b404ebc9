// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position in the scanned input. Line and Column are 1-based and count runes.
type Cursor struct {
	Line, Column int
}

// Position of the first symbol of the input.
var CursorInit = Cursor{Line: 1, Column: 1}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// AdvancedBy returns the position of the first symbol after text, where text
// is the input the scanner consumed starting at c. Columns restart at 1 after
// each newline.
func (c Cursor) AdvancedBy(text string) Cursor {
	if last := strings.LastIndexByte(text, '\n'); last >= 0 {
		c.Line += strings.Count(text, "\n")
		c.Column = 1
		text = text[last+1:]
	}
	c.Column += utf8.RuneCountInString(text)
	return c
}

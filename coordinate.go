// Copyright 2023 Google LLC
// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntaxparser

import "fmt"

// Coordinate is a position in the parsed input. Row is the 0-based row
// index, Column is the 0-based byte offset within that row, and Offset is
// the absolute byte offset from the start of the input. A line break is
// considered to belong to the row that precedes it.
//
// Coordinates are measured in bytes rather than runes: every sub-phrase
// window ([Stream.Unparsed]) is an ordinary Go string, and Go's own
// standard library string and regexp indexing is byte-based, so a
// byte-indexed Coordinate is what every phrase implementation in this
// engine and in internal/langkit naturally produces.
type Coordinate struct {
	Row    int
	Column int
	Offset int
}

// String formats the coordinate as "row:column", matching the style used by
// [NodeToken.String] for tree traces.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Column)
}

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

package langkit

import (
	"regexp"

	"github.com/srccircumflex/syntaxparser"
)

var escapePattern = regexp.MustCompile(`\\.`)

// Mask matches a backslash-escape pair (`\.`) anywhere in the active
// node's unparsed window and elides it from the tree: its two characters
// are re-attributed to the parent as untyped content, the way a string
// body swallows its own escape sequences without surfacing a token for
// them.
type Mask struct {
	syntaxparser.NoSubPhrases
	syntaxparser.NoSuffixPhrases
}

func (Mask) String() string { return "mask" }

// Starts implements [syntaxparser.Starter]. Unlike most Starter
// implementations it does not require a match at the very start of the
// unparsed window: an escape sequence can occur anywhere before the
// enclosing construct's own closing delimiter, and arbitration's
// minimum-At rule lets whichever comes first win.
func (Mask) Starts(s *syntaxparser.Stream) *syntaxparser.Candidate {
	loc := escapePattern.FindStringIndex(s.Unparsed())
	if loc == nil {
		return nil
	}

	return &syntaxparser.Candidate{
		Shape: syntaxparser.ShapeStandalone,
		At:    loc[0],
		To:    loc[1],
		Mask:  true,
	}
}

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
	"strings"

	"github.com/srccircumflex/syntaxparser"
)

// Bracket matches a parenthesized span and is its own sole sub-phrase, so
// brackets nest freely. Any content inside a bracket that no sub-phrase
// classifies falls through to the engine's gap filling as plain, untyped
// text.
type Bracket struct {
	syntaxparser.NoSuffixPhrases

	self []syntaxparser.Phrase
}

// NewBracket returns a Bracket phrase wired to recurse into itself.
func NewBracket() *Bracket {
	b := &Bracket{}
	b.self = []syntaxparser.Phrase{b}

	return b
}

func (b *Bracket) String() string { return "bracket" }

// SubPhrases implements [syntaxparser.Phrase].
func (b *Bracket) SubPhrases() []syntaxparser.Phrase { return b.self }

// Starts implements [syntaxparser.Starter]. It scans the whole unparsed
// window for the next '(' rather than only the current viewpoint, the way
// [String.Ends] scans ahead for its closing quote: the engine's
// minimum-`at` arbitration rule is what picks the nearest match among
// whichever phrases propose one.
func (b *Bracket) Starts(s *syntaxparser.Stream) *syntaxparser.Candidate {
	idx := strings.IndexByte(s.Unparsed(), '(')
	if idx < 0 {
		return nil
	}

	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeNode, At: idx, To: idx + 1}
}

// Ends implements [syntaxparser.Ender].
func (b *Bracket) Ends(s *syntaxparser.Stream) *syntaxparser.Candidate {
	idx := strings.IndexByte(s.Unparsed(), ')')
	if idx < 0 {
		return nil
	}

	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeEnd, At: idx, To: idx + 1}
}

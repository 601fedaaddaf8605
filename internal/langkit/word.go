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

// Package langkit is a small, self-contained language built on top of
// syntaxparser: quoted strings (plain and f-strings), parenthesized
// brackets, and bare words classified into keywords, numbers, and
// variables. It exists to exercise the engine end to end, the way the
// teacher package ships ini and template examples alongside its own
// lexer/parser.
package langkit

import (
	"regexp"

	"github.com/srccircumflex/syntaxparser"
)

var wordPattern = regexp.MustCompile(`\w+`)

var numberPattern = regexp.MustCompile(`^[0-9]+$`)

// Token classes a Word node is classified as, available through the
// node's own ID method once committed.
const (
	ClassKeyword  = "keyword"
	ClassNumber   = "number"
	ClassVariable = "variable"
)

// Word matches a run of word characters anywhere in the unparsed window
// and opens a node spanning the whole run, classified into ClassKeyword,
// ClassNumber, or ClassVariable.
type Word struct {
	syntaxparser.NoSubPhrases
	syntaxparser.NoSuffixPhrases

	keywords map[string]bool
}

// NewWord returns a Word phrase that classifies any of the given words as
// ClassKeyword rather than ClassVariable or ClassNumber.
func NewWord(keywords ...string) *Word {
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		set[k] = true
	}

	return &Word{keywords: set}
}

func (w *Word) String() string { return "word" }

// Starts implements [syntaxparser.Starter]. It scans the whole unparsed
// window rather than requiring a match at the current viewpoint, the same
// lookahead style [Bracket.Starts] uses. The node's span always covers the
// whole matched run — never zero-width — since a zero-width candidate
// sitting exactly at the viewpoint would be rejected outright by the
// engine's anti-infinite-loop rule.
func (w *Word) Starts(s *syntaxparser.Stream) *syntaxparser.Candidate {
	loc := wordPattern.FindStringIndex(s.Unparsed())
	if loc == nil {
		return nil
	}

	text := s.Unparsed()[loc[0]:loc[1]]

	class := ClassVariable

	switch {
	case w.keywords[text]:
		class = ClassKeyword
	case numberPattern.MatchString(text):
		class = ClassNumber
	}

	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeNode, At: loc[0], To: loc[1], ID: class}
}

// Ends implements [syntaxparser.Ender]. A word node's span is entirely
// consumed by its own opening, so it closes itself unconditionally as soon
// as it is asked.
func (w *Word) Ends(*syntaxparser.Stream) *syntaxparser.Candidate {
	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeEnd, At: 0, To: 0, Instant: true}
}

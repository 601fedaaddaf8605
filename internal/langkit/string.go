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
	"strings"

	"github.com/srccircumflex/syntaxparser"
)

const extraQuote = "quote"

var (
	quotePattern  = regexp.MustCompile(`['"]`)
	fquotePattern = regexp.MustCompile(`f['"]`)
)

// String matches a single- or double-quoted span. An `f` prefix switches
// the opened node's own identity to an [FString] via SwitchPh, so the rest
// of the engine sees an ordinary fstring node rather than a string node
// wearing a disguise.
type String struct {
	syntaxparser.NoSuffixPhrases

	mask    *Mask
	fstring *FString
}

// NewString returns a String phrase. fstring is the phrase a leading `f`
// prefix switches the opened node's identity to.
func NewString(fstring *FString) *String {
	return &String{mask: &Mask{}, fstring: fstring}
}

func (s *String) String() string { return "string" }

// SubPhrases implements [syntaxparser.Phrase]: the only thing a plain
// string body recognizes is its own escape sequences.
func (s *String) SubPhrases() []syntaxparser.Phrase {
	return []syntaxparser.Phrase{s.mask}
}

// Starts implements [syntaxparser.Starter]. It scans the whole unparsed
// window for the next quote, preferring an `f` prefix immediately before
// it, rather than requiring a match at the current viewpoint — the same
// lookahead style [Bracket.Starts] uses.
func (s *String) Starts(st *syntaxparser.Stream) *syntaxparser.Candidate {
	u := st.Unparsed()

	fLoc := fquotePattern.FindStringIndex(u)
	qLoc := quotePattern.FindStringIndex(u)

	if fLoc != nil && (qLoc == nil || fLoc[0] <= qLoc[0]) {
		return &syntaxparser.Candidate{
			Shape:    syntaxparser.ShapeNode,
			At:       fLoc[0],
			To:       fLoc[1],
			SwitchPh: s.fstring,
			Extras:   map[string]any{extraQuote: u[fLoc[0]+1]},
		}
	}

	if qLoc != nil {
		return &syntaxparser.Candidate{
			Shape:  syntaxparser.ShapeNode,
			At:     qLoc[0],
			To:     qLoc[1],
			Extras: map[string]any{extraQuote: u[qLoc[0]]},
		}
	}

	return nil
}

// Ends implements [syntaxparser.Ender]. It looks ahead in the unparsed
// window for the quote byte recorded on the node when it was opened;
// [Mask] has first refusal on anything that would otherwise be mistaken
// for the close.
func (s *String) Ends(st *syntaxparser.Stream) *syntaxparser.Candidate {
	quote, _ := st.Node().Extras[extraQuote].(byte)

	idx := strings.IndexByte(st.Unparsed(), quote)
	if idx < 0 {
		return nil
	}

	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeEnd, At: idx, To: idx + 1}
}

// FString is a quoted span that additionally recognizes `{...}` format
// placeholders, reached only by [String.Starts] switching an opened
// node's identity via SwitchPh.
type FString struct {
	syntaxparser.NoSuffixPhrases

	content *FormatContent
}

// NewFString returns an FString phrase whose format placeholders recurse
// into content's sub-phrases.
func NewFString(content *FormatContent) *FString {
	return &FString{content: content}
}

func (f *FString) String() string { return "fstring" }

// SubPhrases implements [syntaxparser.Phrase].
func (f *FString) SubPhrases() []syntaxparser.Phrase {
	return []syntaxparser.Phrase{f.content}
}

// Ends implements [syntaxparser.Ender]; identical in spirit to
// [String.Ends] but reading the same Extras slot a [String] candidate
// populated before switching identity.
func (f *FString) Ends(st *syntaxparser.Stream) *syntaxparser.Candidate {
	quote, _ := st.Node().Extras[extraQuote].(byte)

	idx := strings.IndexByte(st.Unparsed(), quote)
	if idx < 0 {
		return nil
	}

	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeEnd, At: idx, To: idx + 1}
}

// FormatContent matches a `{...}` placeholder inside an [FString] body and
// re-opens the root configuration's own sub-phrases inside it, so an
// expression embedded in an f-string is parsed the same way top-level code
// is.
type FormatContent struct {
	syntaxparser.NoSuffixPhrases

	root *syntaxparser.RootPhrase
}

// NewFormatContent returns a FormatContent phrase whose body recurses into
// root's own sub-phrases. root's Sub field may still be empty at this
// point and is read lazily by SubPhrases, so the cyclic root/string/
// fstring/format-content graph can be wired in any order.
func NewFormatContent(root *syntaxparser.RootPhrase) *FormatContent {
	return &FormatContent{root: root}
}

func (f *FormatContent) String() string { return "fstring-format-content" }

// SubPhrases implements [syntaxparser.Phrase].
func (f *FormatContent) SubPhrases() []syntaxparser.Phrase { return f.root.Sub }

// Starts implements [syntaxparser.Starter].
func (f *FormatContent) Starts(st *syntaxparser.Stream) *syntaxparser.Candidate {
	idx := strings.IndexByte(st.Unparsed(), '{')
	if idx < 0 {
		return nil
	}

	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeNode, At: idx, To: idx + 1}
}

// Ends implements [syntaxparser.Ender].
func (f *FormatContent) Ends(st *syntaxparser.Stream) *syntaxparser.Candidate {
	idx := strings.IndexByte(st.Unparsed(), '}')
	if idx < 0 {
		return nil
	}

	return &syntaxparser.Candidate{Shape: syntaxparser.ShapeEnd, At: idx, To: idx + 1}
}

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

import "github.com/srccircumflex/syntaxparser"

// DefaultKeywords lists the words NewRoot's [Word] phrase classifies as
// ClassKeyword rather than ClassVariable.
var DefaultKeywords = []string{"not", "is"}

// NewRoot builds the worked configuration: quoted strings (with f-string
// and escape-sequence support), parenthesized brackets, and classified bare
// words, wired into a single cyclic phrase graph the way the engine's own
// design notes describe a recursive language's phrase graph — by sharing
// pointers, never by copying.
func NewRoot() *syntaxparser.RootPhrase {
	root := &syntaxparser.RootPhrase{}

	formatContent := NewFormatContent(root)
	fstring := NewFString(formatContent)
	str := NewString(fstring)
	word := NewWord(DefaultKeywords...)
	bracket := NewBracket()

	root.Sub = []syntaxparser.Phrase{str, word, bracket}

	return root
}

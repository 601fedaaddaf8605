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

package syntaxparser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/srccircumflex/syntaxparser"
)

// parenFixture parses "(a(b)c)" with a self-referential paren phrase and
// returns the resulting tree, shared by the index and reader tests the same
// way [TestNodeEndNesting] builds it inline. The shape is:
//
//	root
//	  └── outer "("           [0,1)
//	        ├── "a" (OToken)  [1,2)
//	        ├── inner "("     [2,3)
//	        │     ├── "b" (OToken) [3,4)
//	        │     └── ")" (EndToken) [4,5)
//	        ├── "c" (OToken)  [5,6)
//	        └── ")" (EndToken) [6,7)
//	  End: EOFToken [7,7)
func parenFixture(t *testing.T) *syntaxparser.RootNode {
	t.Helper()

	var paren *fnPhrase

	paren = &fnPhrase{name: "paren"}
	paren.sub = []syntaxparser.Phrase{paren}
	paren.starts = func(s *syntaxparser.Stream) *syntaxparser.Candidate {
		idx := strings.IndexByte(s.Unparsed(), '(')
		if idx < 0 {
			return nil
		}

		return &syntaxparser.Candidate{Shape: syntaxparser.ShapeNode, At: idx, To: idx + 1}
	}
	paren.ends = func(s *syntaxparser.Stream) *syntaxparser.Candidate {
		idx := strings.IndexByte(s.Unparsed(), ')')
		if idx < 0 {
			return nil
		}

		return &syntaxparser.Candidate{Shape: syntaxparser.ShapeEnd, At: idx, To: idx + 1}
	}

	root := &syntaxparser.RootPhrase{Sub: []syntaxparser.Phrase{paren}}

	got, err := syntaxparser.ParseString(context.Background(), root, "(a(b)c)")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	return got
}

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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/srccircumflex/syntaxparser"
)

func TestTokenIndex_GetTokenAtCoord(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	idx := root.NewIndex()

	tests := []struct {
		name    string
		offset  int
		want    string
		wantNil bool
	}{
		{name: "outer open delimiter", offset: 0, want: "("},
		{name: "gap a", offset: 1, want: "a"},
		{name: "inner open delimiter", offset: 2, want: "("},
		{name: "gap b", offset: 3, want: "b"},
		{name: "inner close delimiter", offset: 4, want: ")"},
		{name: "gap c", offset: 5, want: "c"},
		{name: "outer close delimiter", offset: 6, want: ")"},
		{name: "past end of input", offset: 100, wantNil: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := idx.GetTokenAtCoord(syntaxparser.Coordinate{Offset: tc.offset})
			if tc.wantNil {
				if got != nil {
					t.Fatalf("GetTokenAtCoord(%d) = %v, want nil", tc.offset, got)
				}

				return
			}

			if got == nil {
				t.Fatalf("GetTokenAtCoord(%d) = nil, want token with content %q", tc.offset, tc.want)
			}

			if diff := cmp.Diff(tc.want, got.Content()); diff != "" {
				t.Errorf("GetTokenAtCoord(%d) content (-want +got):\n%s", tc.offset, diff)
			}
		})
	}
}

func TestTokenIndex_GetTokenAtCursor(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	idx := root.NewIndex()

	byCoord := idx.GetTokenAtCoord(syntaxparser.Coordinate{Offset: 3})
	byCursor := idx.GetTokenAtCursor(3)

	if byCoord != byCursor {
		t.Errorf("GetTokenAtCursor(3) = %v, want the same token GetTokenAtCoord returns (%v)", byCursor, byCoord)
	}
}

func TestTokenIndex_TokensInRow(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	idx := root.NewIndex()

	row := idx.TokensInRow(0)

	var contents []string
	for _, tok := range row {
		contents = append(contents, tok.Content())
	}

	// The leading and trailing "" are the root node itself and its EOF
	// token, both recorded alongside the content-bearing tokens.
	want := []string{"", "(", "a", "(", "b", ")", "c", ")", ""}

	if diff := cmp.Diff(want, contents); diff != "" {
		t.Errorf("TokensInRow(0) contents (-want +got):\n%s", diff)
	}

	if got := idx.TokensInRow(1); got != nil {
		t.Errorf("TokensInRow(1) = %v, want nil (single-row input)", got)
	}
}

func TestTokenIndex_Rows(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	idx := root.NewIndex()

	if diff := cmp.Diff([]int{0}, idx.Rows()); diff != "" {
		t.Errorf("Rows (-want +got):\n%s", diff)
	}
}

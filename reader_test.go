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

func contents(toks []syntaxparser.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Content()
	}

	return out
}

func TestTokenReader_ThereafterTherebefore(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	outer := root.Inner[0].(*syntaxparser.NodeToken)
	inner := outer.Inner[1].(*syntaxparser.NodeToken)

	r := syntaxparser.NewTokenReader(inner)

	if diff := cmp.Diff([]string{"b", ")", "c", ")", ""}, contents(r.Thereafter())); diff != "" {
		t.Errorf("Thereafter (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"", "(", "a"}, contents(r.Therebefore())); diff != "" {
		t.Errorf("Therebefore (-want +got):\n%s", diff)
	}
}

func TestTokenReader_Inner(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	outer := root.Inner[0].(*syntaxparser.NodeToken)

	r := syntaxparser.NewTokenReader(outer)

	// Depth-first: the inner node's own children are interleaved in
	// document order with outer's direct children, not appended after
	// them. Inner() never descends into a child's own End — only Branch()
	// on that child would surface it.
	want := []string{"a", "(", "b", "c"}

	if diff := cmp.Diff(want, contents(r.Inner())); diff != "" {
		t.Errorf("Inner (-want +got):\n%s", diff)
	}

	leaf := syntaxparser.NewTokenReader(outer.Inner[0])
	if got := leaf.Inner(); got != nil {
		t.Errorf("Inner() on a non-NodeToken anchor = %v, want nil", got)
	}
}

func TestTokenReader_Branch(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	outer := root.Inner[0].(*syntaxparser.NodeToken)
	inner := outer.Inner[1].(*syntaxparser.NodeToken)

	r := syntaxparser.NewTokenReader(inner)

	// inner's own inner tokens, then inner itself, then inner's End.
	want := []string{"b", "(", ")"}

	if diff := cmp.Diff(want, contents(r.Branch())); diff != "" {
		t.Errorf("Branch (-want +got):\n%s", diff)
	}
}

func TestTokenReader_NodePath(t *testing.T) {
	t.Parallel()

	root := parenFixture(t)
	outer := root.Inner[0].(*syntaxparser.NodeToken)
	inner := outer.Inner[1].(*syntaxparser.NodeToken)

	r := syntaxparser.NewTokenReader(inner.Inner[0])

	path := r.NodePath()
	if len(path) != 3 {
		t.Fatalf("NodePath len = %d, want 3 (root, outer, inner)", len(path))
	}

	got := []string{path[0].Content(), path[1].Content(), path[2].Content()}
	want := []string{"", "(", "("}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NodePath root-to-anchor order (-want +got):\n%s", diff)
	}

	if path[len(path)-1] != inner {
		t.Errorf("NodePath last element = %v, want the anchor's immediate parent", path[len(path)-1])
	}
}

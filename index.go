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

import "sort"

// TokenIndex is a flattened, document-order view over a parsed tree, built
// once and queried by coordinate or cursor position. It does not observe
// later mutation of the tree it was built from.
type TokenIndex struct {
	seq  []Token
	rows map[int][]Token
}

// NewTokenIndex walks root's subtree in document order and builds a
// TokenIndex over it. NodeToken values themselves are included in the
// sequence alongside their leaves, in the position their opening delimiter
// occupies.
func NewTokenIndex(root *NodeToken) *TokenIndex {
	idx := &TokenIndex{rows: make(map[int][]Token)}
	idx.visitAll(root)

	return idx
}

func (idx *TokenIndex) visitAll(n *NodeToken) {
	idx.record(n)

	for _, child := range n.Inner {
		if cn, ok := child.(*NodeToken); ok {
			idx.visitAll(cn)
			continue
		}
		idx.record(child)
	}

	if n.End != nil {
		idx.record(n.End)
	}
}

func (idx *TokenIndex) record(t Token) {
	idx.seq = append(idx.seq, t)
	row := t.StartCoord().Row
	idx.rows[row] = append(idx.rows[row], t)
}

// GetTokenAtCoord returns the innermost token whose span contains at, or nil
// if at falls outside every recorded span.
func (idx *TokenIndex) GetTokenAtCoord(at Coordinate) Token {
	return idx.bestMatch(at.Offset)
}

// GetTokenAtCursor is an alias of GetTokenAtCoord using a raw byte offset
// rather than a full [Coordinate].
func (idx *TokenIndex) GetTokenAtCursor(offset int) Token {
	return idx.bestMatch(offset)
}

// bestMatch returns the last-recorded token (i.e. the most deeply nested,
// since nodes are recorded before their children) whose span contains
// offset.
func (idx *TokenIndex) bestMatch(offset int) Token {
	var match Token

	for _, t := range idx.seq {
		s, e := t.StartCoord().Offset, t.EndCoord().Offset

		if offset < s || offset > e {
			continue
		}

		if s == e && offset != s {
			continue
		}

		match = t
	}

	return match
}

// TokensInRow returns every token (including node-open and end tokens) whose
// start coordinate falls on the given row, in document order.
func (idx *TokenIndex) TokensInRow(row int) []Token {
	return idx.rows[row]
}

// Rows returns the sorted list of row numbers the index has any token
// recorded for.
func (idx *TokenIndex) Rows() []int {
	rows := make([]int, 0, len(idx.rows))
	for r := range idx.rows {
		rows = append(rows, r)
	}

	sort.Ints(rows)

	return rows
}

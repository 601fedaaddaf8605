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

import (
	"fmt"
	"strings"
)

// Token is the common interface implemented by every committed element of a
// parse tree: [PlainToken], [NodeToken], [EndToken], [OpenEndToken],
// [EOFToken], and [OToken].
//
// Token is a closed set — attach is unexported so that only the variants
// defined in this package can satisfy the interface. Callers are expected to
// use a type switch over the concrete types above when they need to tell
// the shapes apart.
type Token interface {
	// Content returns the literal text this token covers. For a
	// [NodeToken] this is only the text of the opening delimiter; the
	// node's full span is Content() + its Inner children + its End.
	Content() string

	// StartCoord and EndCoord report the token's span. EndCoord.Offset is
	// always >= StartCoord.Offset. A token with StartCoord == EndCoord is
	// a null token.
	StartCoord() Coordinate
	EndCoord() Coordinate

	// Node returns the parent node, or nil for the root.
	Node() *NodeToken

	// InnerIndex is this token's position in its parent's Inner slice, or
	// -1 if the token occupies its parent's End slot instead.
	InnerIndex() int

	// ID is the user-supplied classification of the token (e.g. a token
	// class name like "keyword" or "number"), or "" if none was given.
	ID() string

	// Empty reports whether the token is a null token.
	Empty() bool

	attach(parent *NodeToken, index int)
}

// base carries the fields and accessors shared by every [Token]
// implementation.
type base struct {
	content string
	start   Coordinate
	end     Coordinate
	parent  *NodeToken
	index   int
	id      string
}

func (b *base) Content() string        { return b.content }
func (b *base) StartCoord() Coordinate { return b.start }
func (b *base) EndCoord() Coordinate   { return b.end }
func (b *base) Node() *NodeToken       { return b.parent }
func (b *base) InnerIndex() int        { return b.index }
func (b *base) ID() string             { return b.id }
func (b *base) Empty() bool            { return b.start == b.end }

func (b *base) attach(parent *NodeToken, index int) {
	b.parent = parent
	b.index = index
}

// PlainToken is a leaf token representing a tokenized span of text. It is
// produced either directly by a phrase's Starts hook (a standalone match)
// or by a phrase's Tokenize hook classifying a run of raw characters.
type PlainToken struct {
	base
}

func (t *PlainToken) String() string {
	return fmt.Sprintf("%q", t.content)
}

// OToken is a plain token synthesized by the engine itself to cover a span
// of input that no active phrase classified — the "gap filler" described in
// the engine's gap-filling rule. It carries no ID.
type OToken struct {
	base
}

func (t *OToken) String() string {
	return fmt.Sprintf("%q", t.content)
}

// EndToken is a leaf token that terminates an enclosing [NodeToken],
// produced by that node's phrase's Ends hook.
type EndToken struct {
	base
}

func (t *EndToken) String() string {
	return fmt.Sprintf("%q", t.content)
}

// OpenEndToken occupies a [NodeToken]'s End slot for as long as the node
// remains open. Its span tracks the position immediately after the node's
// last committed child, per the engine's open-node invariant. If a phrase
// is never closed, an OpenEndToken is what callers will find in the final
// result.
type OpenEndToken struct {
	base
}

func (t *OpenEndToken) String() string { return "<open>" }

// EOFToken is installed as the root node's End once the entire input has
// been consumed.
type EOFToken struct {
	base
}

func (t *EOFToken) String() string { return "<eof>" }

// NodeToken is a branch token: it owns an ordered list of inner children and
// a single End slot. Node carries the Phrase that opened it and an Extras
// bag for arbitrary user data attached by that phrase.
//
// Phrase is the identity exposed to callers; it is only reassigned by a
// candidate's SwitchPh feature. The engine separately tracks which phrase's
// Ends/SubPhrases/Tokenize hooks currently govern the node (mutated by both
// SwitchTo and SwitchPh) — see [Candidate].
type NodeToken struct {
	base

	Phrase Phrase
	Inner  []Token
	End    Token
	Extras map[string]any

	behavior Phrase
}

// String renders the node and its subtree as an indented tree, in the style
// of the teacher package's own Node.String/fmtNode helper.
func (n *NodeToken) String() string {
	var b strings.Builder
	writeNodeTree(&b, n, nil)
	return b.String()
}

func writeNodeTree(b *strings.Builder, n *NodeToken, lastRank []bool) {
	for i := 0; i < len(lastRank)-1; i++ {
		if lastRank[i] {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}

	if len(lastRank) > 0 {
		if lastRank[len(lastRank)-1] {
			b.WriteString("└── ")
		} else {
			b.WriteString("├── ")
		}
	}

	fmt.Fprintf(b, "%s (%s)\n", nodeLabel(n), n.start)

	children := make([]Token, 0, len(n.Inner)+1)
	children = append(children, n.Inner...)
	if n.End != nil {
		children = append(children, n.End)
	}

	for i, child := range children {
		next := append(append([]bool{}, lastRank...), i == len(children)-1)
		if cn, ok := child.(*NodeToken); ok {
			writeNodeTree(b, cn, next)
			continue
		}
		for j := 0; j < len(next)-1; j++ {
			if next[j] {
				b.WriteString("    ")
			} else {
				b.WriteString("│   ")
			}
		}
		if next[len(next)-1] {
			b.WriteString("└── ")
		} else {
			b.WriteString("├── ")
		}
		fmt.Fprintf(b, "%s (%s)\n", tokenLabel(child), child.StartCoord())
	}
}

func nodeLabel(n *NodeToken) string {
	if n.Phrase != nil {
		if s, ok := n.Phrase.(fmt.Stringer); ok {
			return s.String()
		}
	}
	if n.content != "" {
		return fmt.Sprintf("node(%q)", n.content)
	}
	return "root"
}

func tokenLabel(t Token) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%q", t.Content())
}

// RootNode wraps the outermost [NodeToken] produced by a parse. Its Phrase
// is the root configuration passed to [ParseString]/[ParseRows]/
// [ParseReader].
type RootNode struct {
	*NodeToken
}

// NewReader returns a [TokenReader] anchored at the root node.
func (r *RootNode) NewReader() *TokenReader {
	return NewTokenReader(r.NodeToken)
}

// NewIndex builds a [TokenIndex] over the whole tree.
func (r *RootNode) NewIndex() *TokenIndex {
	return NewTokenIndex(r.NodeToken)
}

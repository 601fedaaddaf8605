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

// Phrase is a user configuration object describing how a lexical construct
// opens, what it contains, and how it ends. Phrases form an open set: the
// engine only ever asks a Phrase value for its SubPhrases/SuffixPhrases and
// then type-asserts it against the optional capability interfaces below
// (Starter, Ender, Tokenizer, StartObserver, EndObserver, ConfirmObserver,
// FeaturizeObserver) — a phrase implements exactly the capabilities its
// construct needs, the same way io.Writer implementations optionally satisfy
// io.ReaderFrom.
//
// Phrase objects are expected to be immutable after configuration and may
// reference each other cyclically to express recursive languages (e.g. a
// phrase that is its own sub-phrase, or two phrases that reference each
// other). Cycles must be expressed with shared pointers, never by copying.
type Phrase interface {
	// SubPhrases returns the phrases evaluated for start/standalone
	// candidates while this phrase's node is active.
	SubPhrases() []Phrase

	// SuffixPhrases returns phrases evaluated once, immediately after this
	// phrase's node has just closed, against the parent node's position —
	// allowing a construct to chain a continuation onto its own close.
	SuffixPhrases() []Phrase
}

// Starter is implemented by phrases that can open a node or emit a
// standalone token.
type Starter interface {
	Phrase

	// Starts inspects the unparsed window and returns a candidate
	// describing where this phrase could start, or nil if it does not
	// match. At most one candidate may be returned per call.
	Starts(s *Stream) *Candidate
}

// Ender is implemented by phrases that can close their own node.
type Ender interface {
	Phrase

	// Ends inspects the unparsed window of the currently active node (the
	// node this phrase itself opened) and returns a candidate describing
	// where it could close, or nil if it does not match.
	Ends(s *Stream) *Candidate
}

// Tokenizer is implemented by phrases that classify raw, untyped runs of
// text inside their node into typed [TokenSlice] values.
type Tokenizer interface {
	Phrase

	// Tokenize consumes ts, in order, via ts.Eat/ts.EatRemain, and returns
	// the resulting typed slices in the order they cover ts. Any trailing
	// span of ts left unconsumed is attributed to the parent node as an
	// untyped [OToken] by the engine.
	Tokenize(ts *TokenizeStream) []TokenSlice
}

// TokenSlice is one typed run of text produced by a [Tokenizer].
type TokenSlice struct {
	ID      string
	Content string
}

// StartObserver is implemented by phrases that want to observe a node they
// opened immediately after it is committed and featurized.
type StartObserver interface {
	Phrase
	AtStart(node *NodeToken)
}

// EndObserver is implemented by phrases that want to observe their node
// immediately after it closes.
type EndObserver interface {
	Phrase
	AtEnd(node *NodeToken)
}

// ConfirmObserver is implemented by phrases that want to observe a token the
// instant it is committed, before any feature is applied.
type ConfirmObserver interface {
	Phrase
	AtConfirmed(t Token)
}

// FeaturizeObserver is implemented by phrases that want to observe a token
// after its features (SwitchTo/SwitchPh/ForwardTo/RTokenize) have been
// applied.
type FeaturizeObserver interface {
	Phrase
	AtFeaturized(t Token)
}

// NoSubPhrases can be embedded by a [Phrase] that never opens nested
// content, so it does not need to declare SubPhrases itself.
type NoSubPhrases struct{}

// SubPhrases implements [Phrase].
func (NoSubPhrases) SubPhrases() []Phrase { return nil }

// NoSuffixPhrases can be embedded by a [Phrase] that never chains a
// continuation onto its own close.
type NoSuffixPhrases struct{}

// SuffixPhrases implements [Phrase].
func (NoSuffixPhrases) SuffixPhrases() []Phrase { return nil }

// RootPhrase is the distinguished phrase passed to [ParseString],
// [ParseRows], and [ParseReader]. It has no Starts/Ends of its own — only
// the sub-phrases evaluated directly against the top-level input.
type RootPhrase struct {
	NoSuffixPhrases

	Sub []Phrase
}

// SubPhrases implements [Phrase].
func (r *RootPhrase) SubPhrases() []Phrase { return r.Sub }

// Shape distinguishes the three kinds of instruction a hook may return in a
// [Candidate].
type Shape int

const (
	// ShapeStandalone describes a plain token attributed directly to the
	// currently active node; it does not open a new node.
	ShapeStandalone Shape = iota

	// ShapeNode describes the opening of a new node.
	ShapeNode

	// ShapeEnd describes the close of the currently active node.
	ShapeEnd
)

func (s Shape) String() string {
	switch s {
	case ShapeStandalone:
		return "standalone"
	case ShapeNode:
		return "node"
	case ShapeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Candidate is the instruction a [Starter] or [Ender] hook returns to
// propose a match. At and To are byte offsets into the stream's Unparsed
// window (0 <= At <= To <= len(Unparsed)). The engine commits at most one
// winning candidate per arbitration pass; see the package-level parsing
// rules in the driver for how ties are broken.
type Candidate struct {
	Shape Shape
	At    int
	To    int

	// ID classifies the resulting token (e.g. a token class name),
	// available afterward through the committed [Token]'s ID method —
	// including for ShapeNode, whose visible identity otherwise comes
	// from its Phrase.
	ID string

	// Extras is attached to the opened node's Extras bag. Only meaningful
	// for ShapeNode.
	Extras map[string]any

	// Mask marks the candidate's span as consumed but re-attributed to the
	// parent as untyped content: no PlainToken/NodeToken is created for it,
	// and (for ShapeNode) its sub-phrases are never evaluated.
	Mask bool

	// Instant makes this candidate win unconditionally within its shape
	// class during arbitration.
	Instant bool

	// DefaultEnd (ShapeEnd only) defers this candidate: it only
	// participates in arbitration if, in the same pass, no sub-phrase
	// start/standalone candidate existed at all.
	DefaultEnd bool

	// LStrip, if > 0, advances the stream by that many characters before
	// this candidate is committed; the stripped span becomes a preceding
	// untyped [OToken] attributed to the parent (bypassing Tokenize).
	LStrip int

	// RTokenize, if > 0 (ShapeNode only), feeds the next that-many
	// characters of input into the opened node's Tokenize hook once the
	// node is committed.
	RTokenize int

	// SwitchTo (ShapeNode only) changes which phrase's Ends/SubPhrases/
	// Tokenize govern the opened node from now on, without changing the
	// node's visible Phrase identity.
	SwitchTo Phrase

	// SwitchPh (ShapeNode only) is like SwitchTo but also reassigns the
	// node's visible Phrase identity.
	SwitchPh Phrase

	// ForwardTo (ShapeNode only) transfers "currently active node" status
	// to an already-open node once this candidate is committed. The
	// candidate must have non-zero width (To > At); a zero-width
	// ForwardTo is rejected with ErrNonAdvancingForward.
	ForwardTo *NodeToken

	// Wrap (ShapeNode only) describes a second, inner node immediately
	// committed as the sole child of the node this candidate opens, and
	// pushed above it as the new active node. Wrap's own ID, Extras,
	// SwitchTo, and SwitchPh describe the inner node. The outer node is
	// not an empty shell: it keeps this candidate's span (the opening
	// delimiter) as its content. Wrap.At and Wrap.To are ignored — the
	// inner node always has zero width, opened where the outer node's
	// opening delimiter ends.
	Wrap *Candidate
}

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

// Stream is the read-only window a [Starter] or [Ender] hook is given. It
// never crosses a row boundary: Unparsed is the substring from the current
// viewpoint to the end of the current row. Callers must not retain a Stream
// beyond the hook call it was passed to.
type Stream struct {
	unparsed string
	node     *NodeToken
	rowNo    int
	column   int
}

// Unparsed returns the substring from the current viewpoint to the end of
// the current row.
func (s *Stream) Unparsed() string { return s.unparsed }

// Node returns the currently active node — the node whose phrase is being
// consulted.
func (s *Stream) Node() *NodeToken { return s.node }

// RowNo returns the 0-based index of the row being scanned.
func (s *Stream) RowNo() int { return s.rowNo }

// Column returns the byte offset of the viewpoint within the current row.
func (s *Stream) Column() int { return s.column }

// TokenizeStream wraps a finite, already-delimited span of text handed to a
// [Tokenizer] hook — either a span declared by a candidate's RTokenize
// feature, or an end-of-row/pre-candidate gap the engine needs classified.
// It is consumed left to right via Eat/EatRemain.
type TokenizeStream struct {
	data string
	pos  int
}

// Remaining returns the text not yet consumed.
func (t *TokenizeStream) Remaining() string { return t.data[t.pos:] }

// Len returns the number of bytes not yet consumed.
func (t *TokenizeStream) Len() int { return len(t.data) - t.pos }

// Eat consumes and returns the next n bytes. It panics if n is negative or
// exceeds Len, the same way slicing past a string's bounds would.
func (t *TokenizeStream) Eat(n int) string {
	if n < 0 || n > t.Len() {
		panic("syntaxparser: TokenizeStream.Eat: out of range")
	}

	s := t.data[t.pos : t.pos+n]
	t.pos += n

	return s
}

// EatRemain consumes and returns everything left in the stream.
func (t *TokenizeStream) EatRemain() string {
	return t.Eat(t.Len())
}

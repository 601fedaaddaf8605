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
	"context"
	"fmt"
)

// driver runs the single-threaded, cooperative parsing loop described by
// the engine: a row-by-row scan that repeatedly collects candidates from the
// active node's phrase, arbitrates a winner, commits it, and fills any gap
// the winner left behind.
type driver struct {
	ctx context.Context //nolint:containedctx // the context only gates cooperative cancellation between row iterations.

	rows     []string
	rowStart []int

	root  *NodeToken
	stack []*NodeToken

	rowNo int
	col   int

	pendingSuffix []Phrase
}

func newDriver(ctx context.Context, root Phrase, rows []string) *driver {
	if len(rows) == 0 {
		rows = []string{""}
	}

	rowStart := make([]int, len(rows)+1)
	for i, r := range rows {
		rowStart[i+1] = rowStart[i] + len(r)
	}

	rootNode := &NodeToken{Phrase: root, behavior: root}
	rootNode.End = &OpenEndToken{}

	return &driver{
		ctx:      ctx,
		rows:     rows,
		rowStart: rowStart,
		root:     rootNode,
		stack:    []*NodeToken{rootNode},
	}
}

func (d *driver) coord(row, col int) Coordinate {
	return Coordinate{Row: row, Column: col, Offset: d.rowStart[row] + col}
}

func (d *driver) run() (*RootNode, error) {
	for d.rowNo = 0; d.rowNo < len(d.rows); d.rowNo++ {
		d.col = 0

		select {
		case <-d.ctx.Done():
			return nil, d.ctx.Err()
		default:
		}

		if err := d.scanRow(); err != nil {
			return nil, err
		}
	}

	d.closeRemaining()

	return &RootNode{d.root}, nil
}

func (d *driver) scanRow() error {
	row := d.rows[d.rowNo]

	for {
		select {
		case <-d.ctx.Done():
			return d.ctx.Err()
		default:
		}

		active := d.stack[len(d.stack)-1]
		unparsed := row[d.col:]

		props, err := d.collect(active, unparsed)
		if err != nil {
			return err
		}

		win := selectWinner(props)
		if win == nil {
			d.fillGap(active, len(unparsed), false)
			return nil
		}

		if err := d.commit(*win); err != nil {
			return err
		}
	}
}

// collect asks the active node's governing phrase for an end candidate and
// each of its sub-phrases (plus any pending suffix phrases, consumed here)
// for a start/standalone candidate.
func (d *driver) collect(active *NodeToken, unparsed string) ([]proposal, error) {
	stream := &Stream{unparsed: unparsed, node: active, rowNo: d.rowNo, column: d.col}

	var props []proposal

	if ender, ok := active.behavior.(Ender); ok {
		if c := ender.Ends(stream); c != nil {
			if err := validateSpan(c, len(unparsed)); err != nil {
				return nil, &ParseCoordError{Err: err, At: d.coord(d.rowNo, d.col), Content: unparsed}
			}

			props = append(props, proposal{phrase: active.behavior, cand: c})
		}
	}

	subs := active.behavior.SubPhrases()
	if len(d.pendingSuffix) > 0 {
		combined := make([]Phrase, 0, len(subs)+len(d.pendingSuffix))
		combined = append(combined, subs...)
		combined = append(combined, d.pendingSuffix...)
		subs = combined
	}

	d.pendingSuffix = nil

	for _, ph := range subs {
		starter, ok := ph.(Starter)
		if !ok {
			continue
		}

		c := starter.Starts(stream)
		if c == nil {
			continue
		}

		if err := validateSpan(c, len(unparsed)); err != nil {
			return nil, &ParseCoordError{Err: err, At: d.coord(d.rowNo, d.col), Content: unparsed}
		}

		props = append(props, proposal{phrase: ph, cand: c})
	}

	return props, nil
}

// commit applies a winning candidate: any LStrip/gap prefix is attributed
// first, then the candidate's own span is turned into a committed token and
// linked into the tree, then its features are applied, in the order fixed
// by the engine's commit-and-hook-ordering rule.
func (d *driver) commit(win proposal) error {
	cand := win.cand
	active := d.stack[len(d.stack)-1]
	row := d.rows[d.rowNo]

	if cand.LStrip > 0 {
		d.fillGap(active, cand.LStrip, true)
	}

	if remaining := cand.At - cand.LStrip; remaining > 0 {
		d.fillGap(active, remaining, false)
	}

	width := cand.To - cand.At
	content := row[d.col : d.col+width]

	if cand.Mask {
		d.appendOToken(active, content)
		return nil
	}

	switch cand.Shape {
	case ShapeStandalone:
		return d.commitStandalone(win, content)
	case ShapeEnd:
		return d.commitEnd(win, content)
	case ShapeNode:
		return d.commitNode(win, content)
	default:
		return fmt.Errorf("%w: unknown shape %v", ErrInvalidCandidate, cand.Shape)
	}
}

func (d *driver) commitStandalone(win proposal, content string) error {
	active := d.stack[len(d.stack)-1]

	tok := &PlainToken{base: base{content: content, id: win.cand.ID}}
	tok.start = d.coord(d.rowNo, d.col)
	d.col += len(content)
	tok.end = d.coord(d.rowNo, d.col)

	d.appendChild(active, tok)

	if obs, ok := win.phrase.(ConfirmObserver); ok {
		obs.AtConfirmed(tok)
	}

	if obs, ok := win.phrase.(FeaturizeObserver); ok {
		obs.AtFeaturized(tok)
	}

	return nil
}

func (d *driver) commitEnd(win proposal, content string) error {
	active := d.stack[len(d.stack)-1]

	tok := &EndToken{base: base{content: content, id: win.cand.ID}}
	tok.start = d.coord(d.rowNo, d.col)
	d.col += len(content)
	tok.end = d.coord(d.rowNo, d.col)
	tok.attach(active, -1)
	active.End = tok

	closing := win.phrase

	if obs, ok := closing.(ConfirmObserver); ok {
		obs.AtConfirmed(tok)
	}

	if obs, ok := closing.(FeaturizeObserver); ok {
		obs.AtFeaturized(tok)
	}

	d.stack = d.stack[:len(d.stack)-1]

	if obs, ok := closing.(EndObserver); ok {
		obs.AtEnd(active)
	}

	if suf := closing.SuffixPhrases(); len(suf) > 0 {
		d.pendingSuffix = suf
	}

	return nil
}

func (d *driver) commitNode(win proposal, content string) error {
	active := d.stack[len(d.stack)-1]
	cand := win.cand

	node := &NodeToken{
		base:     base{content: content, id: cand.ID},
		Phrase:   win.phrase,
		behavior: win.phrase,
		Extras:   cand.Extras,
	}
	node.start = d.coord(d.rowNo, d.col)
	d.col += len(content)
	node.end = d.coord(d.rowNo, d.col)
	node.End = &OpenEndToken{base: base{start: node.end, end: node.end}}

	d.appendChild(active, node)
	d.stack = append(d.stack, node)

	if obs, ok := win.phrase.(ConfirmObserver); ok {
		obs.AtConfirmed(node)
	}

	if cand.SwitchTo != nil {
		node.behavior = cand.SwitchTo
	}

	if cand.SwitchPh != nil {
		node.behavior = cand.SwitchPh
		node.Phrase = cand.SwitchPh
	}

	if cand.ForwardTo != nil {
		if len(content) == 0 {
			return &ParseCoordError{Err: ErrNonAdvancingForward, At: node.start, Content: content}
		}

		d.stack = append(d.stack, cand.ForwardTo)
	}

	if cand.RTokenize > 0 {
		d.fillGap(node, cand.RTokenize, false)
	}

	if obs, ok := node.behavior.(FeaturizeObserver); ok {
		obs.AtFeaturized(node)
	}

	if obs, ok := node.behavior.(StartObserver); ok {
		obs.AtStart(node)
	}

	if cand.Wrap != nil {
		d.commitWrap(win.phrase, node, cand.Wrap)
	}

	return nil
}

// commitWrap installs the inner node described by a Wrap feature as the
// sole child of shell (the just-opened outer node) and pushes it as the new
// active node, so subsequent sub-phrase evaluation targets the inner node.
func (d *driver) commitWrap(phrase Phrase, shell *NodeToken, wrap *Candidate) {
	inner := &NodeToken{
		behavior: phrase,
		Extras:   wrap.Extras,
	}
	inner.id = wrap.ID

	if wrap.SwitchTo != nil {
		inner.behavior = wrap.SwitchTo
	}

	inner.Phrase = phrase
	if wrap.SwitchPh != nil {
		inner.Phrase = wrap.SwitchPh
		inner.behavior = wrap.SwitchPh
	}

	c := d.coord(d.rowNo, d.col)
	inner.start, inner.end = c, c
	inner.End = &OpenEndToken{base: base{start: c, end: c}}

	d.appendChild(shell, inner)
	d.stack = append(d.stack, inner)

	if obs, ok := inner.behavior.(StartObserver); ok {
		obs.AtStart(inner)
	}
}

// fillGap attributes the next n bytes of the current row (relative to the
// driver's cursor) to active, either through active's governing phrase's
// Tokenize hook or, if raw is true or no such hook exists, as untyped
// [OToken] content.
func (d *driver) fillGap(active *NodeToken, n int, raw bool) {
	if n <= 0 {
		return
	}

	row := d.rows[d.rowNo]
	text := row[d.col : d.col+n]

	if !raw {
		if tz, ok := active.behavior.(Tokenizer); ok {
			ts := &TokenizeStream{data: text}

			covered := 0
			for _, sl := range tz.Tokenize(ts) {
				d.appendPlain(active, sl.Content, sl.ID)
				covered += len(sl.Content)
			}

			if covered < len(text) {
				d.appendOToken(active, text[covered:])
			}

			return
		}
	}

	d.appendOToken(active, text)
}

func (d *driver) appendPlain(parent *NodeToken, content, id string) {
	if content == "" {
		return
	}

	tok := &PlainToken{base: base{content: content, id: id}}
	tok.start = d.coord(d.rowNo, d.col)
	d.col += len(content)
	tok.end = d.coord(d.rowNo, d.col)

	d.appendChild(parent, tok)
}

func (d *driver) appendOToken(parent *NodeToken, content string) {
	if content == "" {
		return
	}

	tok := &OToken{base: base{content: content}}
	tok.start = d.coord(d.rowNo, d.col)
	d.col += len(content)
	tok.end = d.coord(d.rowNo, d.col)

	d.appendChild(parent, tok)
}

func (d *driver) appendChild(parent *NodeToken, t Token) {
	t.attach(parent, len(parent.Inner))
	parent.Inner = append(parent.Inner, t)

	if oe, ok := parent.End.(*OpenEndToken); ok {
		c := d.coord(d.rowNo, d.col)
		oe.start, oe.end = c, c
	}
}

// closeRemaining installs the root's EOF token. Any other node left open on
// the stack keeps the OpenEndToken it already has, positioned right after
// that node's last direct child per appendChild's bookkeeping.
func (d *driver) closeRemaining() {
	var eofAt Coordinate

	if last := len(d.rows) - 1; last >= 0 {
		eofAt = d.coord(last, len(d.rows[last]))
	}

	eof := &EOFToken{base: base{start: eofAt, end: eofAt}}
	eof.attach(d.root, -1)
	d.root.End = eof
}

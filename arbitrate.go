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

import "fmt"

// proposal pairs a candidate with the phrase that proposed it, so the
// driver knows which phrase's observer hooks to invoke once it is
// committed.
type proposal struct {
	phrase Phrase
	cand   *Candidate
}

// validateSpan enforces the span invariant every candidate must satisfy,
// regardless of how arbitration later treats it.
func validateSpan(c *Candidate, maxLen int) error {
	if c.At < 0 || c.To < c.At || c.To > maxLen {
		return fmt.Errorf("%w: at=%d to=%d max=%d", ErrInvalidCandidate, c.At, c.To, maxLen)
	}

	return nil
}

// selectWinner implements the priority arbitration rules: instant-class
// dominance, then minimum At, null-token preference at a tie (rejecting a
// null non-end candidate at At==0 unless it carries a ForwardTo; such a
// zero-width ForwardTo winner is then refused by commitNode with
// ErrNonAdvancingForward), longest content, and finally end-over-start class precedence,
// with DefaultEnd candidates deferred whenever any start/standalone
// candidate exists in the same pass.
func selectWinner(props []proposal) *proposal {
	if len(props) == 0 {
		return nil
	}

	var instantEnds, instantOthers []proposal

	for _, p := range props {
		if !p.cand.Instant {
			continue
		}

		if p.cand.Shape == ShapeEnd {
			instantEnds = append(instantEnds, p)
		} else {
			instantOthers = append(instantOthers, p)
		}
	}

	restricted := true

	var pool []proposal

	switch {
	case len(instantEnds) > 0:
		pool = instantEnds
	case len(instantOthers) > 0:
		pool = instantOthers
	default:
		pool = props
		restricted = false
	}

	eligible := make([]proposal, 0, len(pool))

	for _, p := range pool {
		if p.cand.Shape != ShapeEnd && p.cand.At == 0 && p.cand.To == 0 {
			if p.cand.ForwardTo == nil {
				continue
			}
		}

		eligible = append(eligible, p)
	}

	if !restricted {
		eligible = deferDefaultEnds(eligible)
	}

	if len(eligible) == 0 {
		return nil
	}

	best := eligible[0]
	for _, p := range eligible[1:] {
		if candidateBetter(p, best) {
			best = p
		}
	}

	return &best
}

// deferDefaultEnds drops DefaultEnd candidates from the pool whenever any
// non-end candidate is present in the same arbitration pass.
func deferDefaultEnds(props []proposal) []proposal {
	hasStart := false

	for _, p := range props {
		if p.cand.Shape != ShapeEnd {
			hasStart = true
			break
		}
	}

	if !hasStart {
		return props
	}

	filtered := make([]proposal, 0, len(props))

	for _, p := range props {
		if p.cand.Shape == ShapeEnd && p.cand.DefaultEnd {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

// candidateBetter reports whether a should be preferred over b under rules
// 2, 3 (tie-break half), 4, and 5 of the arbitration order.
func candidateBetter(a, b proposal) bool {
	if a.cand.At != b.cand.At {
		return a.cand.At < b.cand.At
	}

	aNull := a.cand.At == a.cand.To
	bNull := b.cand.At == b.cand.To

	if aNull != bNull {
		return aNull
	}

	aLen := a.cand.To - a.cand.At
	bLen := b.cand.To - b.cand.At

	if aLen != bLen {
		return aLen > bLen
	}

	aEnd := a.cand.Shape == ShapeEnd
	bEnd := b.cand.Shape == ShapeEnd

	if aEnd != bEnd {
		return aEnd
	}

	return false
}

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
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the parse driver. Callers match them with
// errors.Is; ParseCoordError carries the Coordinate at which the failure was
// detected.
var (
	// ErrInvalidCandidate is returned when a hook returns a candidate that
	// violates the engine's span invariants (at > to, to > len(unparsed)).
	ErrInvalidCandidate = errors.New("syntaxparser: invalid candidate")

	// ErrNonAdvancingForward is returned when a candidate's ForwardTo
	// feature would not advance the stream.
	ErrNonAdvancingForward = errors.New("syntaxparser: forwardTo candidate does not advance the stream")

	// ErrHookPanic wraps a recovered panic from a user-supplied phrase
	// hook.
	ErrHookPanic = errors.New("syntaxparser: phrase hook panicked")
)

// ParseCoordError associates a parse-time error with the [Coordinate] at
// which the driver detected it and the text implicated (the unparsed window
// a rejected candidate was matched against, or the token content a feature
// failed to apply to), formatted the way the teacher package's own
// iniTokenErr/lexTokenErr test helpers format token errors
// ("%w: %q, line %d, column %d").
type ParseCoordError struct {
	Err     error
	At      Coordinate
	Content string
}

func (e *ParseCoordError) Error() string {
	return fmt.Sprintf("%s: %q, line %d, column %d", e.Err, e.Content, e.At.Row, e.At.Column)
}

func (e *ParseCoordError) Unwrap() error { return e.Err }

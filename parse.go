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
	"io"
	"strings"

	"github.com/ianlewis/runeio"
)

// ParseString parses text against root, splitting it into rows on "\n"
// (each row keeps its own trailing newline, if any) before handing it to
// [ParseRows].
func ParseString(ctx context.Context, root Phrase, text string) (*RootNode, error) {
	return ParseRows(ctx, root, splitRows(text))
}

// ParseRows parses a document already split into rows against root. ctx is
// checked for cancellation between rows and between candidate commits; it is
// never raced against a phrase hook call. A nil ctx is treated as
// context.Background.
//
// A panic raised by a user-supplied phrase hook is recovered and returned
// wrapped in [ErrHookPanic], rather than propagating out of ParseRows.
func ParseRows(ctx context.Context, root Phrase, rows []string) (rn *RootNode, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	defer func() {
		if p := recover(); p != nil {
			rn = nil
			err = fmt.Errorf("%w: %v", ErrHookPanic, p)
		}
	}()

	d := newDriver(ctx, root, rows)

	return d.run()
}

// ParseReader reads r to completion, one line at a time, and parses the
// result against root. It uses a rune-accurate reader so a multi-byte
// UTF-8 sequence is never split across a read boundary, the way the
// teacher package's own custom lexer reads its input.
func ParseReader(ctx context.Context, root Phrase, r io.Reader) (*RootNode, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	return ParseRows(ctx, root, rows)
}

// splitRows splits text into rows on "\n", keeping each row's own trailing
// newline so that re-joining the returned slice reproduces text exactly.
func splitRows(text string) []string {
	if text == "" {
		return nil
	}

	var rows []string

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			rows = append(rows, text[start:i+1])
			start = i + 1
		}
	}

	if start < len(text) {
		rows = append(rows, text[start:])
	}

	return rows
}

// readRows drains r rune by rune via a [runeio.Reader], splitting the result
// into rows the same way splitRows does for an in-memory string.
func readRows(r io.Reader) ([]string, error) {
	rr := runeio.NewReader(r)

	var (
		rows []string
		b    strings.Builder
	)

	for {
		ch, _, err := rr.ReadRune()
		if err != nil {
			if err == io.EOF { //nolint:errorlint // runeio.Reader guarantees a bare io.EOF sentinel.
				break
			}

			return nil, err
		}

		b.WriteRune(ch)

		if ch == '\n' {
			rows = append(rows, b.String())
			b.Reset()
		}
	}

	if b.Len() > 0 {
		rows = append(rows, b.String())
	}

	return rows, nil
}

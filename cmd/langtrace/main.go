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

// Command langtrace parses a file (or stdin) with the internal/langkit
// worked configuration and prints the resulting token tree.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srccircumflex/syntaxparser"
	"github.com/srccircumflex/syntaxparser/internal/langkit"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langtrace [file]",
		Short: "Parse a file with the langkit worked configuration and print its token tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}

	cmd.Flags().String("at", "", "look up the token at a row:column position instead of printing the whole tree")

	return cmd
}

func runTrace(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("langtrace: %w", err)
		}
		defer f.Close()

		in = f
	}

	at, err := cmd.Flags().GetString("at")
	if err != nil {
		return fmt.Errorf("langtrace: %w", err)
	}

	if at == "" {
		root, err := syntaxparser.ParseReader(context.Background(), langkit.NewRoot(), in)
		if err != nil {
			return fmt.Errorf("langtrace: parse failed: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), root.String())

		return nil
	}

	return runTraceAt(cmd, in, at)
}

// runTraceAt parses the whole input into memory so the row:column position
// named by --at can be resolved to a byte offset the same way the driver
// itself tracks position, then reports the token [TokenIndex.GetTokenAtCoord]
// finds there.
func runTraceAt(cmd *cobra.Command, in io.Reader, at string) error {
	row, col, err := parseRowCol(at)
	if err != nil {
		return fmt.Errorf("langtrace: --at: %w", err)
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("langtrace: %w", err)
	}

	text := string(raw)

	root, err := syntaxparser.ParseString(context.Background(), langkit.NewRoot(), text)
	if err != nil {
		return fmt.Errorf("langtrace: parse failed: %w", err)
	}

	offset, err := rowColOffset(text, row, col)
	if err != nil {
		return fmt.Errorf("langtrace: --at: %w", err)
	}

	idx := root.NewIndex()

	tok := idx.GetTokenAtCoord(syntaxparser.Coordinate{Row: row, Column: col, Offset: offset})
	if tok == nil {
		return fmt.Errorf("langtrace: no token at %d:%d", row, col)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) %q\n", tokenKind(tok), tok.StartCoord(), tok.Content())

	return nil
}

func parseRowCol(at string) (row, col int, err error) {
	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want row:column, got %q", at)
	}

	row, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q: %w", parts[0], err)
	}

	col, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column %q: %w", parts[1], err)
	}

	return row, col, nil
}

// rowColOffset converts a 0-based row:column position into an absolute byte
// offset, splitting text into rows the same way [syntaxparser.ParseString]
// does internally.
func rowColOffset(text string, row, col int) (int, error) {
	rows := strings.SplitAfter(text, "\n")
	if len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	if row < 0 || row >= len(rows) {
		return 0, fmt.Errorf("row %d out of range (input has %d rows)", row, len(rows))
	}

	if col < 0 || col > len(rows[row]) {
		return 0, fmt.Errorf("column %d out of range for row %d", col, row)
	}

	offset := 0
	for _, r := range rows[:row] {
		offset += len(r)
	}

	return offset + col, nil
}

func tokenKind(tok syntaxparser.Token) string {
	switch tok.(type) {
	case *syntaxparser.NodeToken:
		return "node"
	case *syntaxparser.EndToken:
		return "end"
	case *syntaxparser.OpenEndToken:
		return "open-end"
	case *syntaxparser.EOFToken:
		return "eof"
	case *syntaxparser.OToken:
		return "gap"
	default:
		return "token"
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

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

// Package syntaxparser defines a generic, user-configurable syntax parsing
// engine. Callers describe a language as a graph of [Phrase] values — each
// one telling the engine how a lexical construct starts, what can appear
// inside it, and how it ends — and the engine drives those phrases over an
// input text to produce a tree of [Token] values annotated with source
// coordinates.
//
// The engine itself knows nothing about any particular language. It owns the
// row-by-row scanning loop, the priority arbitration between competing
// phrase matches, the active-node stack, and the bookkeeping that keeps the
// resulting tree well-formed. See [ParseString], [ParseRows], and
// [ParseReader] for the entry points, and the internal/langkit package for a
// worked set of phrases built on top of this engine.
package syntaxparser

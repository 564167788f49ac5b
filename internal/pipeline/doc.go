// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles the preprocessing and conversion stages:
//   - Markdown preprocessing (line normalization, single-line $$ math)
//   - Markdown to HTML conversion via Goldmark, with leaf constructs
//     rendered by a hooks.Set
//   - Inline markup extensions (==mark==, ^sup^, ~sub~)
//   - Standalone document wrapping with stylesheet injection
//
// Macro substitution, sanitizing and excerpts live in their own packages
// and are composed by the root blogmark package.
package pipeline

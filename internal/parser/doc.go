// Package parser builds structural trees from normalized token sequences.
//
// This is not a conformant parser for any real language. It recognizes
// function definitions, brace-delimited blocks, and the common control
// structures, and keeps everything else as opaque leaf runs. The resulting
// tree preserves nesting, which is what the similarity pipeline compares.
//
// The parser never fails on malformed input: when no statement form applies
// it degrades to a generic token run, and the top-level loop always makes
// forward progress, so any finite token buffer yields a finite parse.
//
// Basic usage:
//
//	tokens := scanner.New(source).ScanAll()
//	tree := parser.Parse(tokens)
//	// walk tree.Children
package parser

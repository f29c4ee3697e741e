// Package format renders parsed expressions for people and for ClickHouse.
//
// Two renderings are supported:
//
//   - SQL: canonical re-serialization that parses back to an equal tree,
//     with configurable keyword casing.
//   - EXPLAIN AST: the indented tree dump ClickHouse prints for
//     EXPLAIN AST SELECT <expr>, used to cross-check the parser against a
//     real server.
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		IndentSize:        2,
//		UppercaseKeywords: false,
//	})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, nodes...)
//
//	// Functional API
//	err := format.Format(&buf, format.Defaults, nodes...)
//
//	// EXPLAIN AST
//	fmt.Print(format.Explain(node))
package format

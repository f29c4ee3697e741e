// Package cmd provides the chexpr command-line interface.
//
// # Available Commands
//
//   - parse: print the syntax tree of an expression as an indented tree or YAML
//   - fmt: print an expression as canonical SQL
//   - explain: print ClickHouse-style EXPLAIN AST, optionally diffed against a
//     live server
//
// Every command reads the expression from its single argument, from a file
// given with --file, or from standard input when the argument is "-" or
// missing. --list parses a comma-separated list (a SELECT list) and
// --order-by parses the body of an ORDER BY clause.
//
// # Global Options
//
//   - --config, -c: config file (env CHEXPR_CONFIG, default chexpr.yaml)
//   - --help, -h: display command help
//   - --version: display version information
//
// Commands are plain functions returning *cli.Command that are collected by
// Module through the fx "commands" group.
package cmd

package clickhouse

import (
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff from ours (chexpr's EXPLAIN output) to theirs
// (the server's). It is empty when both are identical.
func Diff(ours, theirs string) (string, error) {
	if ours == theirs {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(ours),
		B:        difflib.SplitLines(theirs),
		FromFile: "chexpr",
		ToFile:   "clickhouse",
		Context:  2,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to diff EXPLAIN output")
	}

	return diff, nil
}

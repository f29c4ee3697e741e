package clickhouse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		diff, err := Diff("Identifier a\n", "Identifier a\n")
		require.NoError(t, err)
		require.Empty(t, diff)
	})

	t.Run("different", func(t *testing.T) {
		ours := "ExpressionList (children 1)\n Literal UInt64_1\n"
		theirs := "ExpressionList (children 1)\n Literal Int64_1\n"

		diff, err := Diff(ours, theirs)
		require.NoError(t, err)
		require.Contains(t, diff, "--- chexpr\n+++ clickhouse\n")
		require.Contains(t, diff, "\n ExpressionList (children 1)\n")
		require.Contains(t, diff, "\n- Literal UInt64_1\n")
		require.Contains(t, diff, "\n+ Literal Int64_1\n")
	})
}

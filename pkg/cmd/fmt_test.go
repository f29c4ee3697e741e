package cmd

import (
	"os"
	"testing"

	"github.com/pseudomuto/chexpr/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestFmtCommand(t *testing.T) {
	command := fmtCmd(config.Default())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"operators", []string{"a+b*c AS x"}, "(a + (b * c)) AS x\n"},
		{"literals", []string{`[0x10, 1.50, 'it\'s', null]`}, `[16, 1.5, 'it\'s', NULL]` + "\n"},
		{"quoted identifier", []string{"`my col`"}, "`my col`\n"},
		{"tuple", []string{"(1, (2))"}, "(1, 2)\n"},
		{"list", []string{"--list", "a,b AS c"}, "a, b AS c\n"},
		{"order by", []string{"--order-by", "x desc, y asc"}, "x DESC, y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, command, "", tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestFmtCommand_WriteBack(t *testing.T) {
	path := writeFile(t, "columns.sql", "count( ) AS n ,\n  avg(x)\n")

	out, err := runCommand(t, fmtCmd(config.Default()), "", "--list", "-w", "-f", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "count() AS n, avg(x)\n", string(data))
}

func TestFmtCommand_Errors(t *testing.T) {
	command := fmtCmd(config.Default())

	_, err := runCommand(t, command, "", "-w", "a")
	require.EqualError(t, err, "--write requires --file")

	_, err = runCommand(t, command, "", "f(")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1, column 3")
}

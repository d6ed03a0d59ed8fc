// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := newParser(&cli)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	require.NoError(t, cli.Global.setup(&out, io.Discard))

	err = ctx.Run()
	return out.String(), err
}

func TestIdentityCommand(t *testing.T) {
	t.Run("prints_requested_order", func(t *testing.T) {
		out, err := runCLI(t, "identity", "--size", "3")
		require.NoError(t, err)
		require.Contains(t, out, "identity(3)")
		require.Contains(t, out, "1 0 0\n0 1 0\n0 0 1\n")
	})

	t.Run("rejects_non_positive_order", func(t *testing.T) {
		_, err := runCLI(t, "identity", "--size", "0")
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

func TestDemoCommand(t *testing.T) {
	t.Run("default_command_replays_scenario", func(t *testing.T) {
		out, err := runCLI(t)
		require.NoError(t, err)
		require.Contains(t, out, "cofactor(m)")
		require.Contains(t, out, " 24   5  -4\n-12   3   2\n -2  -5   4\n")
		require.Contains(t, out, "det(m) 22")
	})

	t.Run("fixed_width", func(t *testing.T) {
		out, err := runCLI(t, "--width", "4", "demo", "--identity", "2")
		require.NoError(t, err)
		require.Contains(t, out, "   1    0\n   0    1\n")
	})
}

func TestInspectCommand(t *testing.T) {
	t.Run("invertible", func(t *testing.T) {
		out, err := runCLI(t, "inspect", "1,2;3,4")
		require.NoError(t, err)
		require.Contains(t, out, "det(m) -2")
		require.Contains(t, out, "  -2    1\n 1.5 -0.5\n")
	})

	t.Run("singular_is_reported", func(t *testing.T) {
		out, err := runCLI(t, "inspect", "1,2;2,4")
		require.NoError(t, err)
		require.Contains(t, out, "det(m) 0")
		require.Contains(t, out, "inverse(m): singular")
	})

	t.Run("non_square_fails", func(t *testing.T) {
		_, err := runCLI(t, "inspect", "1,2,3;4,5,6")
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})

	t.Run("ragged_literal_fails_to_parse", func(t *testing.T) {
		_, err := runCLI(t, "inspect", "1,2;3")
		require.Error(t, err)
	})
}

func TestParseLiteral(t *testing.T) {
	m, err := parseLiteral(" 1, 2 ; 3 ,4 ")
	require.NoError(t, err)
	want, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.True(t, m.Equal(want))

	_, err = parseLiteral("")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = parseLiteral("1,x")
	require.Error(t, err)

	_, err = parseLiteral("1,2;3")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSetupLogLevel(t *testing.T) {
	g := Global{LogLevel: "warn", Verbosity: 2}
	require.NoError(t, g.setup(io.Discard, io.Discard))
	require.NotNil(t, g.Logger)

	g = Global{LogLevel: "loud"}
	require.Error(t, g.setup(io.Discard, io.Discard))
}

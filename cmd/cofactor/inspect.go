// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/cofactor/matrix"
)

const (
	rowSep   = ";"
	valueSep = ","
)

type inspectCmd struct {
	Matrix *matrix.Dense `arg:"" help:"matrix literal, rows separated by ';' and values by ',' (e.g. \"1,2;3,4\")"`
}

func (t inspectCmd) Run(gctx *Global) (err error) {
	m := t.Matrix
	if err = gctx.section("m", m); err != nil {
		return err
	}

	d, err := m.Determinant()
	if err != nil {
		return fmt.Errorf("inspect %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	gctx.Logger.Debug("determinant", slog.Float64("det", d), slog.Int("order", m.Rows()))
	if err = gctx.value("det(m)", d); err != nil {
		return err
	}

	cof, err := m.CofactorMatrix()
	if err != nil {
		return err
	}
	if err = gctx.section("cofactor(m)", cof); err != nil {
		return err
	}

	adj, err := m.Adjoint()
	if err != nil {
		return err
	}
	if err = gctx.section("adjoint(m)", adj); err != nil {
		return err
	}

	inv, err := m.Inverse()
	if errors.Is(err, matrix.ErrSingular) {
		gctx.Logger.Info("matrix is singular, no inverse", slog.Float64("det", d))
		_, err = fmt.Fprintln(gctx.Out, gctx.Au.Yellow("inverse(m): singular"))
		return err
	}
	if err != nil {
		return err
	}

	return gctx.section("inverse(m)", inv)
}

// decodeLiteral is the kong mapper for *matrix.Dense arguments.
func decodeLiteral(ctx *kong.DecodeContext, target reflect.Value) error {
	var raw string
	if err := ctx.Scan.PopValueInto("matrix", &raw); err != nil {
		return err
	}
	m, err := parseLiteral(raw)
	if err != nil {
		return err
	}
	target.Set(reflect.ValueOf(m))

	return nil
}

// parseLiteral reads "a,b;c,d" into a rows×cols matrix. Blank space around values
// is ignored; every row must have the same number of values.
func parseLiteral(raw string) (*matrix.Dense, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("matrix literal: empty: %w", matrix.ErrInvalidDimensions)
	}

	lines := strings.Split(raw, rowSep)
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, valueSep)
		row := make([]float64, 0, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("matrix literal: row %d value %d: %w", i, j, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix literal: %w", err)
	}

	return m, nil
}

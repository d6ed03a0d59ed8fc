// SPDX-License-Identifier: MIT
package main

import (
	"log/slog"

	"github.com/katalvlaran/cofactor/matrix"
)

// demoValues is the reference scenario: det = 22 and cofactor matrix
// [[24,5,-4],[-12,3,2],[-2,-5,4]].
var demoValues = [3][3]float64{
	{1, 2, 3},
	{0, 4, 5},
	{1, 0, 6},
}

type demoCmd struct {
	Identity int `help:"order of the identity matrix printed first" default:"5"`
}

func (t demoCmd) Run(gctx *Global) error {
	id, err := matrix.Identity(t.Identity)
	if err != nil {
		return err
	}
	if err = gctx.section("identity", id); err != nil {
		return err
	}

	m, err := matrix.NewDense(3, 3)
	if err != nil {
		return err
	}
	// fill through the writable accessor, cell by cell.
	for i, row := range demoValues {
		for j, v := range row {
			p, err := m.Ref(i, j)
			if err != nil {
				return err
			}
			*p = v
		}
	}
	if err = gctx.section("m", m); err != nil {
		return err
	}

	cof, err := m.CofactorMatrix()
	if err != nil {
		return err
	}
	if err = gctx.section("cofactor(m)", cof); err != nil {
		return err
	}

	d, err := m.Determinant()
	if err != nil {
		return err
	}
	gctx.Logger.Debug("determinant", slog.Float64("det", d), slog.Int("order", m.Rows()))
	if err = gctx.value("det(m)", d); err != nil {
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
	if err != nil {
		return err
	}

	return gctx.section("inverse(m)", inv)
}

// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cofactor/matrix"
)

type identityCmd struct {
	Size int `help:"order of the identity matrix" short:"n" default:"5" env:"COFACTOR_IDENTITY_SIZE"`
}

func (t identityCmd) Run(gctx *Global) error {
	id, err := matrix.Identity(t.Size)
	if err != nil {
		return err
	}
	gctx.Logger.Debug("identity built", slog.Int("size", t.Size))

	return gctx.section(fmt.Sprintf("identity(%d)", t.Size), id)
}

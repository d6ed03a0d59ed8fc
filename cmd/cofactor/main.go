// SPDX-License-Identifier: MIT

// Command cofactor is the demonstration driver for the matrix package.
//
// It prints identity matrices, replays the reference 3×3 cofactor scenario
// and inspects matrices given as literals ("1,2;3,4": rows separated by ';',
// values by ',').
//
//	cofactor identity --size 5
//	cofactor demo
//	cofactor inspect "1,2;3,4"
package main

import (
	"log"
	"os"
	"reflect"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/cofactor/matrix"
)

// CLI is the root command tree.
type CLI struct {
	Global
	Identity identityCmd `cmd:"" help:"print the identity matrix of the given size"`
	Demo     demoCmd     `cmd:"" default:"1" help:"replay the reference 3x3 cofactor scenario"`
	Inspect  inspectCmd  `cmd:"" help:"print determinant, cofactors, adjoint and inverse of a matrix literal"`
	Version  versionCmd  `cmd:"" help:"display versioning information"`
}

// newParser builds the kong parser for cli. Extra options are appended after
// the defaults, so tests can override Exit or Writers.
func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	defaults := []kong.Option{
		kong.Name("cofactor"),
		kong.Description("dense matrices with cofactor-expansion algebra"),
		kong.UsageOnError(),
		kong.Bind(&cli.Global),
		kong.TypeMapper(reflect.TypeOf(&matrix.Dense{}), kong.MapperFunc(decodeLiteral)),
	}

	return kong.New(cli, append(defaults, options...)...)
}

func main() {
	var (
		cli CLI
		err error
		ctx *kong.Context
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	parser, err := newParser(&cli)
	if err != nil {
		log.Fatalln(err)
	}

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		parser.FatalIfErrorf(err)
	}

	if err = cli.Global.setup(os.Stdout, os.Stderr); err != nil {
		log.Fatalln(err)
	}

	if err = ctx.Run(); err != nil {
		cli.Global.Logger.Error("command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

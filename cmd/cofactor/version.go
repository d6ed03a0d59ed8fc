// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type versionCmd struct{}

func (t versionCmd) Run(gctx *Global) (err error) {
	infos, err := buildInfo()
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(gctx.Out, infos); err != nil {
		return err
	}

	if strings.Contains(infos, "dirty") {
		if _, err = fmt.Fprintln(gctx.Out, gctx.Au.Red("unsupported modified build")); err != nil {
			return err
		}
	}

	return nil
}

func buildInfo() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", errors.New("build information unavailable")
	}

	var (
		revision = "unknown"
		dirty    bool
	)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty {
		revision += " (dirty)"
	}

	return fmt.Sprintf("%s %s %s %s", info.Main.Path, info.Main.Version, revision, info.GoVersion), nil
}

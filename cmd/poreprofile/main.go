/*
 * main.go, part of poreprofile.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
 * General Public License for more details.
 */

// Command poreprofile is the CLI front-end for the pore-pathway profiler:
// it drives the finder/molpath/density pipeline over a scene of frames and
// writes the per-frame and aggregate outputs of spec.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pp "github.com/rmera/poreprofile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", singleLine(err))
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "poreprofile",
		Short:         "Per-frame and aggregate geometry/physicochemistry of ion-channel pore pathways",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRunCmd())
	return cmd
}

// singleLine renders the single-line user-visible message spec.md §7
// requires ("naming the failing option or frame").
func singleLine(err error) string {
	return err.Error()
}

// exitCode maps an Error's Kind to a distinct nonzero exit status, per
// spec.md §7's "nonzero exit code" policy.
func exitCode(err error) int {
	if e, ok := err.(pp.Error); ok {
		switch e.Kind() {
		case pp.KindConfig:
			return 2
		case pp.KindData:
			return 3
		case pp.KindNumeric:
			return 4
		case pp.KindIO:
			return 5
		}
	}
	return 1
}

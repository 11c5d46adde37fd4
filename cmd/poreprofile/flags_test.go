/*
 * flags_test.go, part of poreprofile.
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

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlagsDeclaresCoreFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	v := viper.New()
	registerFlags(cmd, v)

	for _, name := range []string{
		"pf-method", "pf-probe-step", "sa-seed", "nm-max-iter", "pm-pl-margin",
		"de-method", "hydrophob-database", "out-filename", "out-num-points",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}

func TestRunCmdOverridesDefaultViaFlag(t *testing.T) {
	cmd := newRunCmd()
	require.NoError(t, cmd.Flags().Set("pf-probe-step", "0.25"))

	f := cmd.Flags().Lookup("pf-probe-step")
	require.NotNil(t, f)
	assert.Equal(t, "0.25", f.Value.String())
}

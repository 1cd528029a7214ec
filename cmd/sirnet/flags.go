// SPDX-License-Identifier: MIT
// Package: sirnet/cmd/sirnet
//
// flags.go — binding of cobra flags to config keys.

package main

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/sirnet/internal/config"
)

// mustBind binds config keys to flags by name. A missing flag is a
// programming error in this package, hence the panic.
func mustBind(cfg *config.Config, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := cfg.BindFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

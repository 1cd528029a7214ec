// SPDX-License-Identifier: MIT
// Package: sirnet/cmd/sirnet
//
// root.go — root command, persistent flags and config loading.

package main

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirnet/internal/config"
	"github.com/katalvlaran/sirnet/sim"
)

// app carries the resolved configuration and logger into subcommands.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.NewConfig()}

	root := &cobra.Command{
		Use:          "sirnet",
		Short:        "Batched stochastic SIR simulation on Erdős–Rényi contact networks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfgFile != "" {
				if err := a.cfg.LoadFromFile(a.cfgFile); err != nil {
					return err
				}
			}
			a.log = a.cfg.CreateLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.Bool("log-json", false, "emit JSON logs instead of console output")
	pf.Int("workers", runtime.NumCPU(), "concurrent trajectories on the CPU backend")
	pf.Int("max-batch", sim.DefaultMaxBatch, "per-dispatch trajectory cap of the device")
	pf.Int64("memory-bytes", sim.DefaultMemoryBytes, "output memory budget of one dispatch")
	mustBind(a.cfg, pf, map[string]string{
		config.KeyLogLevel:    "log-level",
		config.KeyLogJSON:     "log-json",
		config.KeyWorkers:     "workers",
		config.KeyMaxBatch:    "max-batch",
		config.KeyMemoryBytes: "memory-bytes",
	})

	root.AddCommand(newRunCmd(a), newDevicesCmd(a))
	return root
}

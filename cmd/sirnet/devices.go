// SPDX-License-Identifier: MIT
// Package: sirnet/cmd/sirnet
//
// devices.go — the devices command: print the acquired device.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sirnet/sim"
)

func newDevicesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Print the execution device a session would acquire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := a.cfg.Backend()
			if err != nil {
				return err
			}
			return describeDevice(cmd.Context(), cmd.OutOrStdout(), backend)
		},
	}
}

// describeDevice acquires one device from backend, prints its info and
// releases it. A release failure is returned.
func describeDevice(ctx context.Context, w io.Writer, backend sim.Backend) (err error) {
	dev, err := backend.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, dev.Release()) }()

	info := dev.Info()
	fmt.Fprintf(w, "Backend %s\n", backend.Name())
	fmt.Fprintf(w, "Device: %s\n", info.Name)
	fmt.Fprintf(w, "  workers:\t%d\n", info.Workers)
	fmt.Fprintf(w, "  max batch:\t%d\n", info.MaxBatch)
	fmt.Fprintf(w, "  memory:\t%d bytes\n", info.MemoryBytes)
	return nil
}

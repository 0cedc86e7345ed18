// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/siderolabs/go-blkpg/blkpg"
	"github.com/siderolabs/go-blkpg/block"
)

var rootCmd = &cobra.Command{
	Use:   "blkpg-resize DEVICE",
	Short: "resize a partition in the kernel partition table",
	Long: `Informs the kernel of a new partition extent via the BLKPG_RESIZE_PARTITION ioctl.

The on-disk partition table is not touched, it should be updated separately.
DEVICE is the whole disk, e.g. /dev/sda.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resizeImpl.run(cmd.Context(), args[0])
	},
}

type resizeImplConfig struct {
	partition  int
	start      int64
	end        uint64
	sectorSize uint
	noLock     bool
	debug      bool
}

var resizeImpl resizeImplConfig

// defaultStart makes the start sector default to the kernel's current one.
const defaultStart = -1

func init() {
	resizeImpl.registerFlags(rootCmd.Flags())

	rootCmd.MarkFlagRequired("partition") //nolint:errcheck
	rootCmd.MarkFlagRequired("end")       //nolint:errcheck
}

func (r *resizeImplConfig) registerFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&r.partition, "partition", "p", 0, "partition number, 1-based")
	fs.Int64Var(&r.start, "start", defaultStart, "start sector; defaults to the current start known to the kernel")
	fs.Uint64Var(&r.end, "end", 0, "end sector (exclusive)")
	fs.UintVar(&r.sectorSize, "sector-size", 0, "sector size in bytes; detected from the device if zero")
	fs.BoolVar(&r.noLock, "no-lock", false, "don't take an exclusive lock on the device")
	fs.BoolVar(&r.debug, "debug", false, "enable debug logging")
}

func (r *resizeImplConfig) newLogger() (*zap.Logger, error) {
	if r.debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func (r *resizeImplConfig) run(ctx context.Context, devPath string) error {
	if r.partition < 1 {
		return fmt.Errorf("invalid partition number %d", r.partition)
	}

	if r.start < defaultStart {
		return fmt.Errorf("invalid start sector %d", r.start)
	}

	logger, err := r.newLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defer logger.Sync() //nolint:errcheck

	logger = logger.With(zap.String("device", devPath), zap.Int("partition", r.partition))

	dev, err := block.NewFromPath(devPath)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", devPath, err)
	}

	defer dev.Close() //nolint:errcheck

	if !r.noLock {
		logger.Debug("locking device")

		if err = dev.Lock(true); err != nil {
			return fmt.Errorf("failed to lock %q: %w", devPath, err)
		}

		defer dev.Unlock() //nolint:errcheck
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	sectorSize := r.sectorSize
	if sectorSize == 0 {
		sectorSize = dev.GetSectorSize()
	}

	if size, sizeErr := dev.GetSize(); sizeErr == nil {
		logger.Debug("device geometry", zap.Uint64("size", size), zap.Uint("sector_size", sectorSize))
	}

	current, err := dev.GetKernelPartition(r.partition)

	start, err := resolveStart(current, err, r.start, sectorSize)
	if err != nil {
		return err
	}

	logger.Info("resizing partition",
		zap.Uint64("start", start),
		zap.Uint64("end", r.end),
		zap.Uint64("old_length", current.Length),
		zap.Int64("new_length", (int64(r.end)-int64(start))*int64(sectorSize)),
	)

	if err = blkpg.ResizePartition(dev.File(), int32(r.partition), int64(start), int64(r.end), int64(sectorSize)); err != nil {
		return err
	}

	logger.Info("partition resized")

	return nil
}

// resolveStart picks the start sector: the explicit one if set, otherwise the
// kernel's current start of the partition converted to sectorSize units.
//
// A partition unknown to the kernel is only an error without an explicit start,
// the kernel rejects the resize itself otherwise.
func resolveStart(current block.KernelPartition, lookupErr error, start int64, sectorSize uint) (uint64, error) {
	if start >= 0 {
		if lookupErr != nil && !errors.Is(lookupErr, block.ErrPartitionNotFound) {
			return 0, lookupErr
		}

		return uint64(start), nil
	}

	if lookupErr != nil {
		return 0, lookupErr
	}

	return current.Start / uint64(sectorSize), nil
}

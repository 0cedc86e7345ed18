// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/siderolabs/go-blkpg/blkpg"
)

// KernelPartitionResize invokes the BLKPG_RESIZE_PARTITION ioctl.
//
// The partition spans [first, end) in units of the device logical sector size.
func (d *Device) KernelPartitionResize(no int, first, end uint64) error {
	err := blkpg.ResizePartition(d.f, int32(no), int64(first), int64(end), int64(d.GetSectorSize()))

	runtime.KeepAlive(d)

	return err
}

// GetKernelPartition returns the kernel's view of the partition no.
func (d *Device) GetKernelPartition(no int) (KernelPartition, error) {
	sysFsPath, err := d.sysFsPath()
	if err != nil {
		return KernelPartition{}, err
	}

	contents, err := os.ReadDir(sysFsPath)
	if err != nil {
		return KernelPartition{}, err
	}

	for _, entry := range contents {
		if !entry.IsDir() {
			continue
		}

		partPath := filepath.Join(sysFsPath, entry.Name())

		partNum, err := strconv.Atoi(readSysFsFile(filepath.Join(partPath, "partition")))
		if err != nil || partNum != no {
			continue
		}

		start, err := strconv.ParseUint(readSysFsFile(filepath.Join(partPath, "start")), 10, 64)
		if err != nil {
			return KernelPartition{}, fmt.Errorf("failed to read start of partition %d: %w", no, err)
		}

		size, err := strconv.ParseUint(readSysFsFile(filepath.Join(partPath, "size")), 10, 64)
		if err != nil {
			return KernelPartition{}, fmt.Errorf("failed to read size of partition %d: %w", no, err)
		}

		return KernelPartition{
			No:     no,
			Start:  start * sysFsSectorSize,
			Length: size * sysFsSectorSize,
		}, nil
	}

	return KernelPartition{}, fmt.Errorf("partition %d: %w", no, ErrPartitionNotFound)
}

// GetKernelLastPartitionNum returns the maximum partition number in the kernel.
func (d *Device) GetKernelLastPartitionNum() (int, error) {
	sysFsPath, err := d.sysFsPath()
	if err != nil {
		return 0, err
	}

	contents, err := os.ReadDir(sysFsPath)
	if err != nil {
		return 0, err
	}

	var max int

	for _, entry := range contents {
		if !entry.IsDir() {
			continue
		}

		partNum, err := strconv.Atoi(readSysFsFile(filepath.Join(sysFsPath, entry.Name(), "partition")))
		if err != nil {
			continue
		}

		if partNum > max {
			max = partNum
		}
	}

	return max, nil
}

func readSysFsFile(path string) string {
	contents, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(contents))
}

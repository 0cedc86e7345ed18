// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package block provides support for resizing partitions of blockdevices.
package block

import (
	"errors"
	"os"
)

// Device wraps blockdevice operations.
type Device struct {
	f *os.File

	ownedFile bool
	devNo     uint64
}

// NewFromFile returns a new Device from the specified file.
//
// The file is not closed by Close.
func NewFromFile(f *os.File) *Device {
	return &Device{f: f}
}

// DefaultBlockSize is the default block size in bytes.
const DefaultBlockSize = 512

// sysfs reports partition start and size in 512-byte units.
const sysFsSectorSize = 512

// ErrPartitionNotFound is returned when the kernel doesn't know the partition.
var ErrPartitionNotFound = errors.New("partition not found")

// KernelPartition is the kernel's view of a partition, in bytes.
type KernelPartition struct {
	No     int
	Start  uint64
	Length uint64
}

// OpenOptions configure NewFromPath.
type OpenOptions struct {
	Flags int
}

// OpenOption is an option for NewFromPath.
type OpenOption func(*OpenOptions)

// WithFlags adds extra open(2) flags.
func WithFlags(flags int) OpenOption {
	return func(o *OpenOptions) {
		o.Flags |= flags
	}
}

// File returns the underlying file.
func (d *Device) File() *os.File {
	return d.f
}

// Close the device.
//
// No-op if the device was created from a file.
func (d *Device) Close() error {
	if !d.ownedFile {
		return nil
	}

	return d.f.Close()
}

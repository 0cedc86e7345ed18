// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package blkpg

import (
	"runtime"
	"unsafe"
)

// Fder is an open file handle, e.g. *os.File.
type Fder interface {
	Fd() uintptr
}

// IoctlFunc issues a single ioctl request against fd.
type IoctlFunc func(fd, req uintptr, arg unsafe.Pointer) error

// ResizeOptions configure ResizePartition.
type ResizeOptions struct {
	// Ioctl is the syscall backend.
	Ioctl IoctlFunc
}

// ResizeOption is an option for ResizePartition.
type ResizeOption func(*ResizeOptions)

// WithIoctl replaces the syscall backend.
func WithIoctl(fn IoctlFunc) ResizeOption {
	return func(o *ResizeOptions) {
		o.Ioctl = fn
	}
}

func applyResizeOptions(opts ...ResizeOption) ResizeOptions {
	o := ResizeOptions{
		Ioctl: ioctl,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ResizePartition invokes the BLKPG_RESIZE_PARTITION ioctl, which changes the
// extent of a partition while it might be mounted.
//
// The partition starts at startSector and ends right before endSector, both
// in units of sectorSize bytes. Arguments are passed to the kernel as is, and
// the kernel is the one to reject invalid geometry. The handle is not closed.
func ResizePartition(f Fder, partitionNumber int32, startSector, endSector, sectorSize int64, opts ...ResizeOption) error {
	options := applyResizeOptions(opts...)

	data := Partition{
		Start:  startSector * sectorSize,
		Length: (endSector - startSector) * sectorSize,
		Pno:    partitionNumber,
	}

	arg := IoctlArg{
		Op:   OpResizePartition,
		Data: unsafe.Pointer(&data),
	}

	err := options.Ioctl(f.Fd(), BLKPG, unsafe.Pointer(&arg))

	runtime.KeepAlive(&data)
	runtime.KeepAlive(f)

	if err != nil {
		return &Error{
			Partition: partitionNumber,
			Err:       err,
		}
	}

	return nil
}

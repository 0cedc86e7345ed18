// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package blkpg implements the Linux BLKPG_RESIZE_PARTITION ioctl.
//
// The kernel request consists of two structures mirrored from linux/blkpg.h:
// struct blkpg_ioctl_arg, which selects the operation and points to
// struct blkpg_partition, which carries the new partition extent in bytes.
package blkpg

import (
	"errors"
	"fmt"
	"unsafe"
)

// Block layer ioctl group and BLKPG command number.
const (
	BlockGroup  = 0x12
	BLKPGNumber = 105
)

// OpResizePartition is the BLKPG_RESIZE_PARTITION sub-operation.
const OpResizePartition int32 = 3

// Name buffer lengths of struct blkpg_partition.
const (
	DevnameLength = 64
	VolnameLength = 64
)

// IoctlArg mirrors struct blkpg_ioctl_arg.
//
// Datalen is always zero: the kernel derives the payload size from Op.
type IoctlArg struct {
	Op      int32
	Flags   int32
	Datalen int32
	Data    unsafe.Pointer
}

// ErrNotSupported is returned on platforms without the BLKPG ioctl.
var ErrNotSupported = errors.New("blkpg is not supported on this platform")

// Error is returned when the kernel rejects the request.
//
// Err is the system error as returned by the ioctl, usually a syscall.Errno.
type Error struct {
	Partition int32
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("blkpg resize partition %d: %s", e.Partition, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

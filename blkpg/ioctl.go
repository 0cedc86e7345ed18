// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package blkpg

// Direction is the data transfer direction encoded in an ioctl request.
type Direction uint8

// Transfer directions, as seen from userspace.
const (
	DirNone Direction = iota
	DirWrite
	DirRead
	DirReadWrite
)

const (
	iocNumberBits = 8
	iocTypeBits   = 8

	iocNumberShift = 0
	iocTypeShift   = iocNumberShift + iocNumberBits
	iocSizeShift   = iocTypeShift + iocTypeBits
	iocDirShift    = iocSizeShift + iocSizeBits

	iocSizeMask = 1<<iocSizeBits - 1
)

// BLKPG is the ioctl request number of the block layer partition interface.
//
// The kernel reads the argument through its own pointer, so the request
// declares no transfer direction and no size.
const BLKPG = iocNone<<iocDirShift | BlockGroup<<iocTypeShift | BLKPGNumber<<iocNumberShift

// Compose packs an ioctl request number the way the host's _IOC macro does.
//
// Size is truncated to the width of the size field.
func Compose(dir Direction, magic, number uint8, size uint16) uintptr {
	return uintptr(iocDirection(dir))<<iocDirShift |
		uintptr(size&iocSizeMask)<<iocSizeShift |
		uintptr(magic)<<iocTypeShift |
		uintptr(number)<<iocNumberShift
}

func iocDirection(dir Direction) uint32 {
	switch dir { //nolint:exhaustive
	case DirWrite:
		return iocWrite
	case DirRead:
		return iocRead
	case DirReadWrite:
		return iocRead | iocWrite
	default:
		return iocNone
	}
}

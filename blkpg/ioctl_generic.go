// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !mips && !mipsle && !mips64 && !mips64le && !ppc && !ppc64 && !ppc64le && !sparc64

package blkpg

// asm-generic/ioctl.h layout.
const (
	iocSizeBits = 14

	iocNone  = 0
	iocWrite = 1
	iocRead  = 2
)

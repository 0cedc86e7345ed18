// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build mips || mipsle || mips64 || mips64le || ppc || ppc64 || ppc64le || sparc64

package blkpg

// MIPS, PowerPC and SPARC use a 13-bit size field and a 3-bit direction field.
const (
	iocSizeBits = 13

	iocNone  = 1
	iocRead  = 2
	iocWrite = 4
)

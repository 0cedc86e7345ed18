// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !386

package blkpg

// Partition mirrors struct blkpg_partition.
//
// Devname and Volname are not read by the kernel for resize and stay zeroed.
type Partition struct {
	Start   int64
	Length  int64
	Pno     int32
	Devname [DevnameLength]byte
	Volname [VolnameLength]byte
	_       [4]byte
}

// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package blkpg

// Partition mirrors struct blkpg_partition.
//
// On i386 long long is 4-byte aligned and the structure has no tail padding.
// Devname and Volname are not read by the kernel for resize and stay zeroed.
type Partition struct {
	Start   int64
	Length  int64
	Pno     int32
	Devname [DevnameLength]byte
	Volname [VolnameLength]byte
}

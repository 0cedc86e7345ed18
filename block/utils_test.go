// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	for _, n := range []uint32{1, 2, 512, 4096, 1 << 31} {
		assert.True(t, isPowerOf2(n), n)
	}

	for _, n := range []uint32{0, 3, 520, 4095, 1<<31 + 1} {
		assert.False(t, isPowerOf2(n), n)
	}
}

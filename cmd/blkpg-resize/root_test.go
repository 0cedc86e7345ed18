// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-blkpg/block"
)

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name string

		args []string

		expected resizeImplConfig
	}{
		{
			name: "defaults",
			args: []string{"-p", "2", "--end", "4096"},
			expected: resizeImplConfig{
				partition: 2,
				start:     -1,
				end:       4096,
			},
		},
		{
			name: "explicit geometry",
			args: []string{"--partition", "3", "--start", "256", "--end", "262400", "--sector-size", "4096", "--no-lock", "--debug"},
			expected: resizeImplConfig{
				partition:  3,
				start:      256,
				end:        262400,
				sectorSize: 4096,
				noLock:     true,
				debug:      true,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var r resizeImplConfig

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			r.registerFlags(fs)

			require.NoError(t, fs.Parse(test.args))

			assert.Equal(t, test.expected, r)
		})
	}
}

func TestRunInvalidPartition(t *testing.T) {
	t.Parallel()

	r := resizeImplConfig{
		start: -1,
		end:   4096,
	}

	assert.EqualError(t, r.run(context.Background(), "/dev/null"), "invalid partition number 0")
}

func TestRunMissingDevice(t *testing.T) {
	t.Parallel()

	r := resizeImplConfig{
		partition: 1,
		start:     -1,
		end:       4096,
	}

	assert.ErrorContains(t, r.run(context.Background(), "/nonexistent/device"), "failed to open")
}

func TestRunInvalidStart(t *testing.T) {
	t.Parallel()

	r := resizeImplConfig{
		partition: 1,
		start:     -5,
		end:       4096,
	}

	assert.EqualError(t, r.run(context.Background(), "/dev/null"), "invalid start sector -5")
}

func TestResolveStart(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("partition 2: %w", block.ErrPartitionNotFound)
	errSysFs := errors.New("sysfs is not mounted")

	current := block.KernelPartition{
		No:     2,
		Start:  1048576,
		Length: 1073741824,
	}

	for _, test := range []struct { //nolint:govet
		name string

		current    block.KernelPartition
		lookupErr  error
		start      int64
		sectorSize uint

		expected    uint64
		expectedErr error
	}{
		{
			name:       "default start with 512 byte sectors",
			current:    current,
			start:      defaultStart,
			sectorSize: 512,
			expected:   2048,
		},
		{
			name:       "default start with 4K sectors",
			current:    current,
			start:      defaultStart,
			sectorSize: 4096,
			expected:   256,
		},
		{
			name:       "explicit start overrides the kernel",
			current:    current,
			start:      34,
			sectorSize: 512,
			expected:   34,
		},
		{
			name:       "explicit start with unknown partition",
			lookupErr:  notFound,
			start:      2048,
			sectorSize: 512,
			expected:   2048,
		},
		{
			name:        "default start with unknown partition",
			lookupErr:   notFound,
			start:       defaultStart,
			sectorSize:  512,
			expectedErr: block.ErrPartitionNotFound,
		},
		{
			name:        "explicit start with lookup failure",
			lookupErr:   errSysFs,
			start:       2048,
			sectorSize:  512,
			expectedErr: errSysFs,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			start, err := resolveStart(test.current, test.lookupErr, test.start, test.sectorSize)

			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, start)
		})
	}
}

//go:build !windows

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceBlockSizeRejectsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-device")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := deviceBlockSize(path)
	assert.ErrorIs(t, err, errNotBlockDevice)
}

func TestDeviceBlockSizeMissingPath(t *testing.T) {
	_, err := deviceBlockSize(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDeviceCapacityOfRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0xaa}, 12345), 0o600))

	size, err := deviceCapacity(path)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), size)
}

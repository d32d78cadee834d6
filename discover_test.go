//go:build !windows

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWholeLinuxDevice(t *testing.T) {
	for _, name := range []string{"sda", "sdz", "vdb", "nvme0n1", "nvme10n2", "mmcblk0", "mmcblk2"} {
		assert.True(t, isWholeLinuxDevice(name), name)
	}
	for _, name := range []string{"sda1", "vdb2", "nvme0", "nvme0n1p2", "mmcblk0p1", "loop0", "dm-0", "sr0", "ram0"} {
		assert.False(t, isWholeLinuxDevice(name), name)
	}
}

func TestIsPartitionLinux(t *testing.T) {
	for _, name := range []string{"sda1", "sdb12", "vda2", "nvme0n1p2", "mmcblk0p1"} {
		assert.True(t, isPartitionLinux(name), name)
	}
	for _, name := range []string{"sda", "vdb", "nvme0n1", "mmcblk0", "loop0"} {
		assert.False(t, isPartitionLinux(name), name)
	}
}

func TestIsPartitionDarwin(t *testing.T) {
	for _, name := range []string{"disk2s1", "rdisk3s2", "disk10s11"} {
		assert.True(t, isPartitionDarwin(name), name)
	}
	for _, name := range []string{"disk2", "rdisk3", "disk10"} {
		assert.False(t, isPartitionDarwin(name), name)
	}
}

func TestWholeDiskOf(t *testing.T) {
	cases := []struct {
		goos string
		dev  string
		want string
	}{
		{"darwin", "/dev/disk2s1", "/dev/disk2"},
		{"darwin", "/dev/rdisk3s2", "/dev/rdisk3"},
		{"darwin", "/dev/disk2", "/dev/disk2"},
		{"linux", "/dev/sda3", "/dev/sda"},
		{"linux", "/dev/sdb12", "/dev/sdb"},
		{"linux", "/dev/nvme0n1p2", "/dev/nvme0n1"},
		{"linux", "/dev/mmcblk0p1", "/dev/mmcblk0"},
		{"linux", "/dev/sda", "/dev/sda"},
		{"linux", "/dev/nvme0n1", "/dev/nvme0n1"},
		{"freebsd", "/dev/da0", "/dev/da0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, wholeDiskOf(c.goos, c.dev), "%s %s", c.goos, c.dev)
	}
}

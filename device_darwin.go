//go:build darwin

package main

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// findDarwinDeviceForMount resolves a mount point to its backing device node
// via getfsstat.
func findDarwinDeviceForMount(target string) (device string, mountpoint string) {
	for _, st := range statfsAll() {
		on := unix.ByteSliceToString(st.Mntonname[:])
		if filepath.Clean(on) == filepath.Clean(target) {
			return unix.ByteSliceToString(st.Mntfromname[:]), on
		}
	}
	return "", ""
}

// listMountedDarwin returns every mounted volume, so listings can flag
// devices that are in use before anyone overwrites one.
func listMountedDarwin() []mountedVol {
	var out []mountedVol
	for _, st := range statfsAll() {
		out = append(out, mountedVol{
			MountPoint: filepath.Clean(unix.ByteSliceToString(st.Mntonname[:])),
			Device:     unix.ByteSliceToString(st.Mntfromname[:]),
			FSType:     unix.ByteSliceToString(st.Fstypename[:]),
			SizeBytes:  int64(st.Blocks) * int64(st.Bsize),
		})
	}
	return out
}

func statfsAll() []unix.Statfs_t {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil || n <= 0 {
		return nil
	}
	buf := make([]unix.Statfs_t, n)
	if _, err := unix.Getfsstat(buf, unix.MNT_NOWAIT); err != nil {
		return nil
	}
	return buf
}

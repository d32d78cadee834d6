//go:build windows

package main

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func driveTypeString(t uint32) string {
	switch t {
	case windows.DRIVE_REMOVABLE:
		return "removable"
	case windows.DRIVE_FIXED:
		return "fixed"
	case windows.DRIVE_REMOTE:
		return "network"
	case windows.DRIVE_CDROM:
		return "cdrom"
	case windows.DRIVE_RAMDISK:
		return "ramdisk"
	default:
		return "unknown"
	}
}

// listMountedWindows probes the drive letters and reports every volume with a
// root directory.
func listMountedWindows() []mountedVol {
	out := []mountedVol{}
	for l := byte('A'); l <= byte('Z'); l++ {
		root := fmt.Sprintf("%c:\\", l)
		p, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		typeCode := windows.GetDriveType(p)
		if typeCode == windows.DRIVE_UNKNOWN || typeCode == windows.DRIVE_NO_ROOT_DIR {
			continue
		}
		var total uint64
		_ = windows.GetDiskFreeSpaceEx(p, nil, &total, nil)
		out = append(out, mountedVol{
			MountPoint: root,
			Device:     fmt.Sprintf("%c:", l),
			FSType:     driveTypeString(typeCode),
			SizeBytes:  int64(total),
		})
	}
	return out
}

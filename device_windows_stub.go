//go:build !windows

package main

func listMountedWindows() []mountedVol { return nil }

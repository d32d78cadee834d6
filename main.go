// chkdev.go
// Block device integrity checker.
// Writes a seed-keyed pseudorandom stream across the whole device, reads it
// back with an independently seeded generator, and reports the first byte
// that differs.
//
// Build:
//
//	go build -o chkdev .
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"chkdev/keystream"
	"chkdev/progress"
)

/* ===================== helpers ===================== */

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func parseSize(s string) (int64, error) {
	ss := strings.TrimSpace(strings.ToLower(s))
	if ss == "" {
		return 0, fmt.Errorf("empty size")
	}
	mult := int64(1)
	switch {
	case strings.HasSuffix(ss, "k"):
		mult = 1024
		ss = strings.TrimSuffix(ss, "k")
	case strings.HasSuffix(ss, "m"):
		mult = 1024 * 1024
		ss = strings.TrimSuffix(ss, "m")
	case strings.HasSuffix(ss, "g"):
		mult = 1024 * 1024 * 1024
		ss = strings.TrimSuffix(ss, "g")
	case strings.HasSuffix(ss, "b"):
		mult = 1
		ss = strings.TrimSuffix(ss, "b")
	}
	v, err := strconv.ParseFloat(ss, 64)
	if err != nil {
		return 0, err
	}
	return int64(v * float64(mult)), nil
}

func human(b int64) string {
	if b >= 1024*1024*1024 {
		return fmt.Sprintf("%dG", b/(1024*1024*1024))
	}
	if b >= 1024*1024 {
		return fmt.Sprintf("%dM", b/(1024*1024))
	}
	if b >= 1024 {
		return fmt.Sprintf("%dK", b/1024)
	}
	return fmt.Sprintf("%dB", b)
}

// getDeviceSize and deviceBlockSize are implemented per-OS in devsize_*.go

// deviceCapacity returns the total size of the device at path in bytes.
func deviceCapacity(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open device: %w", err)
	}
	defer f.Close()
	return getDeviceSize(f)
}

/* ===================== error taxonomy ===================== */

var (
	errConflictingSeeds   = errors.New("--seed and --raw-seed are mutually exclusive, specify only one of them")
	errRandomSeedReadOnly = errors.New("cannot read but not write when using a random seed")
	errNotBlockDevice     = errors.New("not a block device")
	errNoWriteProgress    = errors.New("could not write any data to device")
	errNotConfirmed       = errors.New("did not accept overwriting data on device")
)

// MismatchError reports the first byte read back from the device that does
// not match the expected stream.
type MismatchError struct {
	Offset   uint64
	Device   byte
	Expected byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("device contents do not match expected stream at position %d: device had 0x%02x, expected 0x%02x",
		e.Offset, e.Device, e.Expected)
}

// SizeMismatchError reports a completed phase whose byte count does not match
// the independently measured device capacity.
type SizeMismatchError struct {
	Op   string // "wrote" or "read"
	Got  uint64
	Want uint64
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s %d bytes, but expected disk size to be %d bytes", e.Op, e.Got, e.Want)
}

// PhaseMismatchError reports write and read phases of the same run that
// transferred different byte counts.
type PhaseMismatchError struct {
	Written uint64
	Read    uint64
}

func (e *PhaseMismatchError) Error() string {
	return fmt.Sprintf("wrote %d bytes but read back %d bytes", e.Written, e.Read)
}

// isOutOfSpace reports whether a write failed because the device has no
// remaining capacity, the expected end-of-device signal for raw writes.
func isOutOfSpace(err error) bool {
	return errors.Is(err, syscall.ENOSPC)
}

/* ===================== seed resolution ===================== */

// resolveSeed turns the CLI seed inputs into a stream seed. The returned
// description is reported to the operator so a run can be reproduced later;
// for random seeds it carries the only copy of the seed there will ever be.
func resolveSeed(passphrase, rawSeed string, willWrite bool) (keystream.Seed, string, error) {
	switch {
	case passphrase != "" && rawSeed != "":
		return keystream.Seed{}, "", errConflictingSeeds
	case passphrase != "":
		return keystream.SeedFromPassphrase(passphrase), "Using seed " + passphrase, nil
	case rawSeed != "":
		seed, err := keystream.ParseSeed(rawSeed)
		if err != nil {
			return keystream.Seed{}, "", fmt.Errorf("--raw-seed: %w", err)
		}
		return seed, "Using raw seed " + seed.String(), nil
	default:
		if !willWrite {
			return keystream.Seed{}, "", errRandomSeedReadOnly
		}
		seed, err := keystream.RandomSeed()
		if err != nil {
			return keystream.Seed{}, "", err
		}
		return seed, "Using raw seed " + seed.String(), nil
	}
}

/* ===================== check orchestration ===================== */

type checkOptions struct {
	passphrase string
	rawSeed    string
	write      bool
	read       bool
	force      bool
	blockSize  string
}

// confirmOverwrite gates destructive runs behind an interactive y/N prompt.
func confirmOverwrite(device string) error {
	fmt.Fprintf(os.Stderr, "Will write pseudo-random stream of data to device '%s'. This will overwrite all data on the device.\n", device)
	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)
	answer, err := l.Prompt("Are you sure you want to continue? (y/N) ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return errNotConfirmed
		}
		return fmt.Errorf("reading confirmation: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return errNotConfirmed
	}
	return nil
}

// runCheck is the full verification sequence: resolve the seed, size the
// device, confirm, stream the keyed bytes onto the device until out-of-space,
// read them back, and cross-check every byte count against capacity.
func runCheck(device string, opts checkOptions) error {
	doWrite, doRead := opts.write, opts.read
	if !doWrite && !doRead {
		doWrite = true
		doRead = true
	}

	seed, seedDesc, err := resolveSeed(opts.passphrase, opts.rawSeed, doWrite)
	if err != nil {
		return fmt.Errorf("unable to get seed: %w", err)
	}
	fmt.Fprintln(os.Stderr, seedDesc)

	blockSize, err := deviceBlockSize(device)
	if err != nil {
		return fmt.Errorf("unable to get block size of device at '%s': %w", device, err)
	}
	if opts.blockSize != "" {
		blockSize, err = parseSize(opts.blockSize)
		if err != nil {
			return fmt.Errorf("invalid --block-size %q: %w", opts.blockSize, err)
		}
		if blockSize <= 0 {
			return fmt.Errorf("invalid --block-size %q: must be positive", opts.blockSize)
		}
	}
	fmt.Fprintf(os.Stderr, "Disk block size is %d bytes\n", blockSize)

	capacity, err := deviceCapacity(device)
	if err != nil {
		return fmt.Errorf("unable to get disk size of device at '%s': %w", device, err)
	}
	fmt.Fprintf(os.Stderr, "Disk size is %d bytes\n", capacity)

	if doWrite && !opts.force {
		if err := confirmOverwrite(device); err != nil {
			return err
		}
	}

	var written uint64
	if doWrite {
		written, err = writeDevice(device, seed, blockSize, progress.ForTerminal(os.Stderr, "Written", uint64(capacity)))
		if err != nil {
			return fmt.Errorf("error writing to device '%s': %w", device, err)
		}
		if written != uint64(capacity) {
			return &SizeMismatchError{Op: "wrote", Got: written, Want: uint64(capacity)}
		}
	}

	var read uint64
	if doRead {
		read, err = readDevice(device, seed, blockSize, progress.ForTerminal(os.Stderr, "Read", uint64(capacity)))
		if err != nil {
			return fmt.Errorf("error reading from device '%s': %w", device, err)
		}
		if read != uint64(capacity) {
			return &SizeMismatchError{Op: "read", Got: read, Want: uint64(capacity)}
		}
	}

	if doWrite && doRead && written != read {
		return &PhaseMismatchError{Written: written, Read: read}
	}
	return nil
}

/* ===================== write engine ===================== */

// syncWriter is the device surface the write engine needs: sequential writes
// plus a durability sync once the device reports it is full.
type syncWriter interface {
	io.Writer
	Sync() error
}

// writeDevice streams the keyed bytes onto the device until it runs out of
// space and returns the number of bytes that landed. The generator is
// constructed here so each phase owns a fresh instance at position 0.
func writeDevice(device string, seed keystream.Seed, blockSize int64, rep progress.Reporter) (uint64, error) {
	f, err := os.Create(device)
	if err != nil {
		return 0, fmt.Errorf("open device: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(os.Stderr, "Writing to device %s\n", device)

	written, err := drainStream(f, keystream.New(seed), make([]byte, blockSize), rep)
	if err != nil {
		return written, err
	}
	fmt.Fprintf(os.Stderr, "Successfully wrote %d bytes\n", written)
	return written, nil
}

// drainStream fills block-sized buffers from the stream and writes them to
// dst, resuming the remainder of a block after a partial write. Out-of-space
// is the successful termination: the device's true capacity is discovered by
// overrunning it, and the bytes are synced to stable storage before
// returning. A zero-length write means the device accepts nothing more yet
// never signalled out-of-space, and is fatal.
func drainStream(dst syncWriter, stream *keystream.Stream, buf []byte, rep progress.Reporter) (uint64, error) {
	var written uint64
	for {
		rep.Tick(written)

		if err := stream.Fill(buf); err != nil {
			return written, fmt.Errorf("error generating random bytes: %w", err)
		}

		block := buf
		for len(block) > 0 {
			n, err := dst.Write(block)
			if err != nil {
				written += uint64(n)
				if isOutOfSpace(err) {
					if serr := dst.Sync(); serr != nil {
						return written, fmt.Errorf("error while trying to call fsync: %w", serr)
					}
					return written, nil
				}
				return written, fmt.Errorf("encountered error writing to device, had successfully written %d bytes: %w", written, err)
			}
			if n == 0 {
				return written, fmt.Errorf("%w, had successfully written %d bytes", errNoWriteProgress, written)
			}
			written += uint64(n)
			block = block[n:]
		}
	}
}

/* ===================== read/verify engine ===================== */

// readDevice re-derives the keyed stream with its own freshly seeded
// generator and compares it against the device contents, returning the
// number of bytes read and matched.
func readDevice(device string, seed keystream.Seed, blockSize int64, rep progress.Reporter) (uint64, error) {
	f, err := os.Open(device)
	if err != nil {
		return 0, fmt.Errorf("open device: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(os.Stderr, "Reading from device %s\n", device)

	read, err := verifyStream(f, keystream.New(seed), make([]byte, blockSize), make([]byte, blockSize), rep)
	if err != nil {
		return read, err
	}
	fmt.Fprintf(os.Stderr, "Successfully read and matched %d bytes\n", read)
	return read, nil
}

// verifyStream reads chunks from src and compares each against the next
// bytes of the stream. A zero-length read or clean EOF is the end of the
// device and terminates successfully. The first differing byte fails with
// its absolute device offset and both values.
func verifyStream(src io.Reader, stream *keystream.Stream, deviceBuf, streamBuf []byte, rep progress.Reporter) (uint64, error) {
	var read uint64
	for {
		rep.Tick(read)

		n, err := src.Read(deviceBuf)
		if err != nil && !errors.Is(err, io.EOF) {
			return read, fmt.Errorf("encountered error reading device, had successfully read %d bytes: %w", read, err)
		}
		if n == 0 {
			return read, nil
		}

		got := deviceBuf[:n]
		want := streamBuf[:n]
		if ferr := stream.Fill(want); ferr != nil {
			return read, fmt.Errorf("error generating random bytes: %w", ferr)
		}
		if !bytes.Equal(got, want) {
			for i := range got {
				if got[i] != want[i] {
					return read, &MismatchError{Offset: read + uint64(i), Device: got[i], Expected: want[i]}
				}
			}
			return read, fmt.Errorf("unreachable: buffers differ but no mismatching byte found after %d bytes", read)
		}
		read += uint64(n)

		if err != nil {
			// Data arrived together with EOF; the device is exhausted.
			return read, nil
		}
	}
}

/* ===================== CLI ===================== */

func main() {
	var (
		passphrase string
		rawSeed    string
		doWrite    bool
		doRead     bool
		force      bool
		blockSize  string
	)

	root := &cobra.Command{
		Use:   "chkdev <device>",
		Short: "Block device integrity checker",
		Long: "Write a pseudorandom stream of bytes to the given device, then read it back to\n" +
			"confirm the device stored every byte faithfully. Detects defective and\n" +
			"counterfeit media that silently drop or wrap writes.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args[0], checkOptions{
				passphrase: passphrase,
				rawSeed:    rawSeed,
				write:      doWrite,
				read:       doRead,
				force:      force,
				blockSize:  blockSize,
			})
		},
	}
	root.Flags().StringVar(&passphrase, "seed", "", "seed passphrase, sha256-hashed into the stream seed (exclusive with --raw-seed)")
	root.Flags().StringVar(&rawSeed, "raw-seed", "", "raw 32 byte seed as exactly 64 hex characters, no leading 0x (exclusive with --seed)")
	root.Flags().BoolVarP(&doWrite, "write", "w", false, "write to the given device")
	root.Flags().BoolVarP(&doRead, "read", "r", false, "read from the given device (if neither -w nor -r is given, both are implied)")
	root.Flags().BoolVar(&force, "force", false, "skip the overwrite confirmation prompt")
	root.Flags().StringVar(&blockSize, "block-size", "", "override the device-reported block size (e.g. 4k, 1m)")

	// device: safe, read-only utilities
	deviceCmd := &cobra.Command{
		Use:   "device",
		Short: "Device related utilities (safe, read-only)",
	}

	var listAll bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List devices that can be tested (read-only)",
		RunE: func(_ *cobra.Command, _ []string) error {
			infos, err := discoverDevices()
			if err != nil {
				return err
			}
			fmt.Printf("OS: %s\n", runtime.GOOS)
			fmt.Println("This is a SAFE, read-only listing. No data will be written.")
			fmt.Println()
			fmt.Println("Whole-disk devices (testing one overwrites the entire disk):")
			fmt.Printf("  %-18s  %-14s  %-20s  %-8s\n", "Path", "Type", "Serial", "Size")
			printed := false
			for _, d := range infos {
				if !d.Whole {
					continue
				}
				dtype, serial, sizeStr := getDeviceDetails(d.Path)
				fmt.Printf("  %-18s  %-14s  %-20s  %-8s\n", d.Path, dtype, serial, sizeStr)
				printed = true
			}
			if !printed {
				fmt.Println("  <none detected>")
			}
			fmt.Println()
			if listAll {
				fmt.Println("Partitions and other block devices (testing one overwrites only that range):")
				for _, d := range infos {
					if d.Whole {
						continue
					}
					reason := d.Reason
					if strings.TrimSpace(reason) == "" {
						reason = "not a whole-disk device"
					}
					fmt.Printf("  %s  (%s)\n", d.Path, reason)
				}
				fmt.Println()
			}
			var mounted []mountedVol
			switch runtime.GOOS {
			case "darwin":
				mounted = listMountedDarwin()
			case "linux":
				for _, m := range listMountedLinux() {
					if strings.HasPrefix(m.Device, "/dev/") {
						mounted = append(mounted, m)
					}
				}
			case "windows":
				mounted = listMountedWindows()
			}
			if len(mounted) > 0 {
				fmt.Println("Mounted volumes (do NOT test a device while it is mounted):")
				fmt.Printf("  %-24s  %-14s  %-18s  %-8s\n", "Mount", "FS", "Device", "Size")
				for _, m := range mounted {
					sizeStr := "-"
					if m.SizeBytes > 0 {
						sizeStr = human(m.SizeBytes)
					}
					fmt.Printf("  %-24s  %-14s  %-18s  %-8s\n", m.MountPoint, m.FSType, m.Device, sizeStr)
				}
				fmt.Println()
			}
			fmt.Println("Notes:")
			switch runtime.GOOS {
			case "darwin":
				fmt.Println("  - Whole disks are typically /dev/diskN. Partitions like /dev/diskNsM can be tested too; only that slice is overwritten.")
			case "linux":
				fmt.Println("  - Whole disks: /dev/sdX, /dev/vdX, /dev/nvmeXnY, /dev/mmcblkX. Partitions (trailing digits) can be tested too.")
			case "windows":
				fmt.Println("  - Verification is not supported on Windows; this listing is informational.")
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listAll, "all", false, "include partitions and other non-whole-disk entries")
	deviceCmd.AddCommand(listCmd)

	var infoPath string
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show detailed info about a mount point or device (read-only)",
		RunE: func(_ *cobra.Command, _ []string) error {
			if strings.TrimSpace(infoPath) == "" {
				return fmt.Errorf("--path is required")
			}
			dev, mnt, err := resolvePathToDevice(infoPath)
			if err != nil {
				return err
			}
			whole := wholeDiskOf(runtime.GOOS, dev)

			size := int64(-1)
			if f, err := os.Open(whole); err == nil {
				defer f.Close()
				if sz, err := getDeviceSize(f); err == nil {
					size = sz
				}
			}

			fmt.Println("Path info")
			fmt.Printf("  Input:   %s\n", infoPath)
			fmt.Printf("  Device:  %s\n", dev)
			if mnt != "" {
				fmt.Printf("  Mounted: %s\n", mnt)
			}
			fmt.Printf("  Whole:   %s\n", whole)
			if size >= 0 {
				fmt.Printf("  Size:    %s (%d bytes)\n", human(size), size)
			}
			if mnt != "" {
				fmt.Println()
				fmt.Println("WARNING: this device is mounted. Unmount it before testing it.")
			}
			return nil
		},
	}
	infoCmd.Flags().StringVar(&infoPath, "path", "", "mount point (e.g. /mnt/usb) or device path (e.g. /dev/sdb)")
	_ = infoCmd.MarkFlagRequired("path")
	deviceCmd.AddCommand(infoCmd)
	root.AddCommand(deviceCmd)

	must(root.Execute())
}

/* ===================== device discovery (read-only) ===================== */

type deviceInfo struct {
	Path   string
	Whole  bool
	Reason string
}

type mountedVol struct {
	MountPoint string
	Device     string
	FSType     string
	SizeBytes  int64
}

func discoverDevices() ([]deviceInfo, error) {
	switch runtime.GOOS {
	case "darwin":
		return discoverDarwin()
	case "linux":
		return discoverLinux()
	case "windows":
		return discoverWindows()
	default:
		return nil, fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}

func discoverDarwin() ([]deviceInfo, error) {
	entries, err := os.ReadDir("/dev")
	if err != nil {
		return nil, err
	}
	infos := []deviceInfo{}
	for _, e := range entries {
		name := e.Name()
		// Include both buffered and raw disk device nodes
		if strings.HasPrefix(name, "disk") || strings.HasPrefix(name, "rdisk") {
			path := filepath.Join("/dev", name)
			if isPartitionDarwin(name) {
				infos = append(infos, deviceInfo{Path: path, Whole: false, Reason: "partition"})
			} else {
				infos = append(infos, deviceInfo{Path: path, Whole: true})
			}
		}
	}
	return infos, nil
}

// isPartitionDarwin reports an 's' immediately followed by a digit in the
// node name (e.g. disk2s1, rdisk3s2).
func isPartitionDarwin(name string) bool {
	for i := 0; i+1 < len(name); i++ {
		if name[i] == 's' && name[i+1] >= '0' && name[i+1] <= '9' {
			return true
		}
	}
	return false
}

func discoverLinux() ([]deviceInfo, error) {
	entries, err := os.ReadDir("/dev")
	if err != nil {
		return nil, err
	}
	infos := []deviceInfo{}
	for _, e := range entries {
		name := e.Name()
		path := filepath.Join("/dev", name)
		if isWholeLinuxDevice(name) {
			infos = append(infos, deviceInfo{Path: path, Whole: true})
			continue
		}
		if isPartitionLinux(name) {
			infos = append(infos, deviceInfo{Path: path, Whole: false, Reason: "partition"})
			continue
		}
		if strings.HasPrefix(name, "loop") {
			infos = append(infos, deviceInfo{Path: path, Whole: false, Reason: "loop device"})
		}
	}
	return infos, nil
}

func isWholeLinuxDevice(name string) bool {
	// sdX, vdX
	if len(name) == 3 && (strings.HasPrefix(name, "sd") || strings.HasPrefix(name, "vd")) && name[2] >= 'a' && name[2] <= 'z' {
		return true
	}
	// nvmeXnY (nvmeX alone is the controller node, not a namespace)
	if strings.HasPrefix(name, "nvme") && !strings.Contains(name, "p") {
		parts := strings.Split(strings.TrimPrefix(name, "nvme"), "n")
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			return true
		}
	}
	// mmcblkX
	if strings.HasPrefix(name, "mmcblk") && !strings.Contains(name, "p") {
		return true
	}
	return false
}

func isPartitionLinux(name string) bool {
	// sdXN or vdXN: trailing digit(s)
	if (strings.HasPrefix(name, "sd") || strings.HasPrefix(name, "vd")) && len(name) >= 4 {
		if name[len(name)-1] >= '0' && name[len(name)-1] <= '9' {
			return true
		}
	}
	// nvmeXnYpZ
	if strings.HasPrefix(name, "nvme") && strings.Contains(name, "n") && strings.Contains(name, "p") {
		return true
	}
	// mmcblkXpZ
	if strings.HasPrefix(name, "mmcblk") && strings.Contains(name, "p") {
		return true
	}
	return false
}

func discoverWindows() ([]deviceInfo, error) {
	// Probe a reasonable range for PhysicalDriveN
	infos := []deviceInfo{}
	for i := 0; i < 32; i++ {
		path := fmt.Sprintf("\\\\.\\PhysicalDrive%d", i)
		f, err := os.Open(path)
		if err == nil {
			_ = f.Close()
			infos = append(infos, deviceInfo{Path: path, Whole: true})
		} else if i < 8 {
			infos = append(infos, deviceInfo{Path: path, Whole: false, Reason: "not accessible"})
		}
	}
	return infos, nil
}

// listMountedLinux parses /proc/self/mounts. Sizes are not populated.
func listMountedLinux() []mountedVol {
	b, err := os.ReadFile("/proc/self/mounts")
	if err != nil {
		return nil
	}
	var out []mountedVol
	for _, ln := range strings.Split(string(b), "\n") {
		// format: <src> <target> <fstype> <opts> ...
		fields := strings.Fields(ln)
		if len(fields) < 3 {
			continue
		}
		out = append(out, mountedVol{
			MountPoint: fields[1],
			Device:     fields[0],
			FSType:     fields[2],
		})
	}
	return out
}

func findLinuxDeviceForMount(target string) (device string, mountpoint string) {
	for _, m := range listMountedLinux() {
		if filepath.Clean(m.MountPoint) == filepath.Clean(target) {
			return m.Device, m.MountPoint
		}
	}
	return "", ""
}

// findMountByDevice returns the mount point of a device node, or "" when it
// is not mounted.
func findMountByDevice(dev string) string {
	switch runtime.GOOS {
	case "linux":
		for _, m := range listMountedLinux() {
			if m.Device == dev {
				return m.MountPoint
			}
		}
	case "darwin":
		for _, m := range listMountedDarwin() {
			if m.Device == dev {
				return m.MountPoint
			}
		}
	}
	return ""
}

// resolvePathToDevice resolves a mount point or device path to its device
// node and mount path.
func resolvePathToDevice(p string) (device string, mountpoint string, err error) {
	p = filepath.Clean(p)
	// If path is already a device node
	if strings.HasPrefix(p, "/dev/") || strings.HasPrefix(p, `\\.\`) {
		return p, findMountByDevice(p), nil
	}
	// Otherwise, treat as mountpoint. Try platform-specific resolution.
	switch runtime.GOOS {
	case "darwin":
		dev, mnt := findDarwinDeviceForMount(p)
		if dev == "" {
			return "", "", fmt.Errorf("cannot resolve device for %s", p)
		}
		return dev, mnt, nil
	case "linux":
		dev, mnt := findLinuxDeviceForMount(p)
		if dev == "" {
			return "", "", fmt.Errorf("cannot resolve device for %s", p)
		}
		return dev, mnt, nil
	case "windows":
		return "", "", fmt.Errorf("on Windows, pass a device like \\\\.\\PhysicalDriveN with --path")
	default:
		return "", "", fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}

// wholeDiskOf derives the whole-disk device backing a partition node, or
// returns dev unchanged when it already names a whole disk.
func wholeDiskOf(goos, dev string) string {
	base := filepath.Base(dev)
	switch goos {
	case "darwin":
		// /dev/(r)diskNsM -> /dev/(r)diskN
		for i := 0; i+1 < len(base); i++ {
			if base[i] == 's' && base[i+1] >= '0' && base[i+1] <= '9' {
				return filepath.Join("/dev", base[:i])
			}
		}
	case "linux":
		if !isPartitionLinux(base) {
			return dev
		}
		// nvmeXnYpZ -> nvmeXnY, mmcblkXpZ -> mmcblkX
		if idx := strings.LastIndexByte(base, 'p'); idx != -1 {
			return filepath.Join("/dev", base[:idx])
		}
		// sdXN -> sdX
		for len(base) > 0 && base[len(base)-1] >= '0' && base[len(base)-1] <= '9' {
			base = base[:len(base)-1]
		}
		return filepath.Join("/dev", base)
	}
	return dev
}

// getDeviceDetails returns (type, serial, sizeHuman) for device listings.
// Every probe is best-effort; unknown values come back as "-".
func getDeviceDetails(path string) (string, string, string) {
	dtype := "Disk"
	serial := "-"
	sizeStr := "-"

	switch runtime.GOOS {
	case "linux":
		name := filepath.Base(path)
		sysPath := filepath.Join("/sys/block", name)
		if _, err := os.Stat(sysPath); err != nil {
			// Some names appear under /sys/class/block
			sysPath = filepath.Join("/sys/class/block", name)
		}
		if b, err := os.ReadFile(filepath.Join(sysPath, "removable")); err == nil {
			if strings.TrimSpace(string(b)) == "1" {
				dtype = "Removable Disk"
			} else {
				dtype = "Fixed Disk"
			}
		}
		if b, err := os.ReadFile(filepath.Join(sysPath, "device", "serial")); err == nil {
			serial = strings.TrimSpace(string(b))
		}
	case "windows":
		dtype = "PhysicalDrive"
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if sz, err2 := getDeviceSize(f); err2 == nil {
			sizeStr = human(sz)
		}
	}
	return dtype, serial, sizeStr
}

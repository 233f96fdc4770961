//go:build linux
// +build linux

package sysinfo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/procfs/sysfs"
	"golang.org/x/sys/unix"
)

var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

func readOSVersion(ctx context.Context) (OSVersion, error) {
	for _, path := range osReleasePaths {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return OSVersion{}, err
		}
		v, err := parseOSRelease(f)
		f.Close()
		return v, err
	}

	v, err := platformVersion(ctx)
	if err != nil {
		return OSVersion{}, err
	}
	if v.Version == "" {
		var u unix.Utsname
		if err := unix.Uname(&u); err != nil {
			return OSVersion{}, err
		}
		v.Version = unix.ByteSliceToString(u.Release[:])
	}
	return v, nil
}

// readVRAM returns VRAM bytes keyed by DRM card index. Only drivers that
// publish mem_info_vram_total (amdgpu) appear in the map.
func readVRAM() (map[int]uint64, error) {
	sys, err := sysfs.NewDefaultFS()
	if err != nil {
		return nil, err
	}
	return vramByCard(sys)
}

func vramByCard(sys sysfs.FS) (map[int]uint64, error) {
	stats, err := sys.ClassDRMCardAMDGPUStats()
	if err != nil {
		return nil, err
	}
	vram := make(map[int]uint64, len(stats))
	for _, s := range stats {
		idx, err := strconv.Atoi(strings.TrimPrefix(s.Name, "card"))
		if err != nil {
			continue
		}
		vram[idx] = s.MemoryVRAMSize
	}
	return vram, nil
}

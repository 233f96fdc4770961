//go:build darwin
// +build darwin

package sysinfo

import (
	"context"
	"os"
)

const systemVersionPath = "/System/Library/CoreServices/SystemVersion.plist"

func readOSVersion(ctx context.Context) (OSVersion, error) {
	f, err := os.Open(systemVersionPath)
	if err != nil {
		return platformVersion(ctx)
	}
	defer f.Close()
	return parseSystemVersion(f)
}

// readVRAM macOS exposes no per-card VRAM through sysfs-like files
func readVRAM() (map[int]uint64, error) {
	return nil, nil
}

//go:build !linux && !darwin
// +build !linux,!darwin

package sysinfo

import "context"

func readOSVersion(ctx context.Context) (OSVersion, error) {
	return platformVersion(ctx)
}

func readVRAM() (map[int]uint64, error) {
	return nil, nil
}

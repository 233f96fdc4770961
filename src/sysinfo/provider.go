package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Provider is the narrow view of the host the snapshot layer reads from.
// Implementations must be safe for concurrent use; every call is a fresh read.
type Provider interface {
	// Processor returns the static processor identity.
	Processor(ctx context.Context) (ProcessorStat, error)
	// CPULoad blocks for window and returns the system-wide load as a percentage.
	CPULoad(ctx context.Context, window time.Duration) (float64, error)
	Memory(ctx context.Context) (MemoryStat, error)
	DiskStores(ctx context.Context) ([]DiskStore, error)
	GraphicsCards(ctx context.Context) ([]GraphicsCard, error)
	// ProcessCount is read independently of Processes and may not match its length.
	ProcessCount(ctx context.Context) (int, error)
	Processes(ctx context.Context) ([]ProcessStat, error)
	// Uptime returns seconds since boot.
	Uptime(ctx context.Context) (uint64, error)
	OSVersion(ctx context.Context) (OSVersion, error)
}

// ProcessorStat identifies the first processor package. MaxFreqHz is the
// advertised frequency, not a live reading.
type ProcessorStat struct {
	Name          string
	PhysicalCores int
	LogicalCores  int
	MaxFreqHz     int64
}

// MemoryStat physical memory in bytes
type MemoryStat struct {
	Total     uint64
	Available uint64
}

// DiskStore a physical disk, size in bytes
type DiskStore struct {
	Model string
	Size  uint64
}

// GraphicsCard a graphics adapter, VRAM in bytes
type GraphicsCard struct {
	Name string
	VRAM uint64
}

// ProcessStat one entry of the process table
type ProcessStat struct {
	Name  string
	Pid   int32
	Ppid  int32
	State ProcessState
}

// ProcessState is the scheduler state of a process as gopsutil reports it.
type ProcessState string

const (
	StateRunning ProcessState = process.Running
	StateSleep   ProcessState = process.Sleep
	// StateBlocked is an uninterruptible wait, D on Linux.
	StateBlocked ProcessState = process.Blocked
	StateIdle    ProcessState = process.Idle
	StateWait    ProcessState = process.Wait
	StateLock    ProcessState = process.Lock
	StateStop    ProcessState = process.Stop
	StateZombie  ProcessState = process.Zombie
	StateUnknown ProcessState = process.UnknownState
)

// OSVersion names the running operating system. CodeName is empty when the
// release does not have one.
type OSVersion struct {
	CodeName string
	Family   string
	Version  string
}

// Facet names used in IntrospectionError.
const (
	FacetProcessor = "processor"
	FacetCPULoad   = "cpu load"
	FacetMemory    = "memory"
	FacetDisks     = "disks"
	FacetGPUs      = "graphics cards"
	FacetProcesses = "processes"
	FacetUptime    = "uptime"
	FacetOS        = "os version"
)

// IntrospectionError is returned when a facet of the host cannot be read.
type IntrospectionError struct {
	Facet string
	Err   error
}

func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Facet, e.Err)
}

func (e *IntrospectionError) Unwrap() error {
	return e.Err
}

func introspectionError(facet string, err error) error {
	return &IntrospectionError{Facet: facet, Err: err}
}

package snapshot

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/models"
	"github.com/FilipAndrei2/system-monitoring-rest-api/src/sysinfo"
	"golang.org/x/exp/constraints"
)

// LoadWindow is how long /cpu samples processor load for.
const LoadWindow = 800 * time.Millisecond

// BytesToGB converts bytes to whole GiB, truncating.
func BytesToGB[T constraints.Unsigned](bytes T) int64 {
	return int64(uint64(bytes) >> 30)
}

// Mapper turns provider reads into response DTOs. Nothing is cached, every
// call queries the provider again.
type Mapper struct {
	provider   sysinfo.Provider
	loadWindow time.Duration
}

func NewMapper(provider sysinfo.Provider) *Mapper {
	return &Mapper{
		provider:   provider,
		loadWindow: LoadWindow,
	}
}

// ProcessorInfo blocks for the load window.
func (m *Mapper) ProcessorInfo(ctx context.Context) (*models.ProcessorInfo, error) {
	proc, err := m.provider.Processor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get processor info: %w", err)
	}
	load, err := m.provider.CPULoad(ctx, m.loadWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu load: %w", err)
	}
	return &models.ProcessorInfo{
		Name:            proc.Name,
		PhysicalCores:   proc.PhysicalCores,
		LogicalCores:    proc.LogicalCores,
		MaxFreqHz:       proc.MaxFreqHz,
		UsagePercentage: clampPercent(load),
	}, nil
}

func clampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// MemoryInfo truncates total and available first, used is their difference.
func (m *Mapper) MemoryInfo(ctx context.Context) (*models.MemoryInfo, error) {
	stat, err := m.provider.Memory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}
	total := BytesToGB(stat.Total)
	available := BytesToGB(stat.Available)
	return &models.MemoryInfo{
		TotalMb:     total,
		AvailableMb: available,
		UsedMb:      total - available,
	}, nil
}

func (m *Mapper) DiskInfo(ctx context.Context) ([]models.DiskInfo, error) {
	stores, err := m.provider.DiskStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get disk stores: %w", err)
	}
	disks := make([]models.DiskInfo, 0, len(stores))
	for _, d := range stores {
		disks = append(disks, models.DiskInfo{
			Model:  d.Model,
			SizeGb: BytesToGB(d.Size),
		})
	}
	return disks, nil
}

func (m *Mapper) GpuInfo(ctx context.Context) ([]models.GpuInfo, error) {
	cards, err := m.provider.GraphicsCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get graphics cards: %w", err)
	}
	gpus := make([]models.GpuInfo, 0, len(cards))
	for _, c := range cards {
		gpus = append(gpus, models.GpuInfo{
			Name:   c.Name,
			VramGb: BytesToGB(c.VRAM),
		})
	}
	return gpus, nil
}

// ProcessesInfo returns the whole process table, unfiltered and in
// provider order.
func (m *Mapper) ProcessesInfo(ctx context.Context) (*models.ProcessesInfo, error) {
	count, err := m.provider.ProcessCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get process count: %w", err)
	}
	procs, err := m.provider.Processes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get processes: %w", err)
	}
	uptime, err := m.provider.Uptime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get uptime: %w", err)
	}
	processes := make([]models.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		processes = append(processes, models.ProcessInfo{
			Name:      p.Name,
			Pid:       p.Pid,
			ParentPid: p.Ppid,
			State:     StateName(p.State),
		})
	}
	return &models.ProcessesInfo{
		TotalProcesses: count,
		Processes:      processes,
		UptimeSec:      uptime,
	}, nil
}

func (m *Mapper) OsInfo(ctx context.Context) (*models.OsInfo, error) {
	v, err := m.provider.OSVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get os version: %w", err)
	}
	return &models.OsInfo{
		CodeName: v.CodeName,
		Family:   v.Family,
		Version:  v.Version,
	}, nil
}

package sysinfo

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"k8s.io/klog/v2"
)

var errNoProcessorInfo = errors.New("no processor information available")

// virtualDiskPrefixes block devices that are not backed by a disk store
var virtualDiskPrefixes = []string{"loop", "ram", "zram", "dm-", "md", "nbd"}

// SystemProvider reads the local machine through gopsutil and ghw.
// It holds no state, one value can serve every request.
type SystemProvider struct{}

func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

var _ Provider = (*SystemProvider)(nil)

func (s *SystemProvider) Processor(ctx context.Context) (ProcessorStat, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return ProcessorStat{}, introspectionError(FacetProcessor, err)
	}
	if len(infos) == 0 {
		return ProcessorStat{}, introspectionError(FacetProcessor, errNoProcessorInfo)
	}
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return ProcessorStat{}, introspectionError(FacetProcessor, err)
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return ProcessorStat{}, introspectionError(FacetProcessor, err)
	}
	return ProcessorStat{
		Name:          strings.TrimSpace(infos[0].ModelName),
		PhysicalCores: physical,
		LogicalCores:  logical,
		MaxFreqHz:     int64(infos[0].Mhz * 1e6),
	}, nil
}

func (s *SystemProvider) CPULoad(ctx context.Context, window time.Duration) (float64, error) {
	percent, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, introspectionError(FacetCPULoad, err)
	}
	if len(percent) == 0 {
		return 0, introspectionError(FacetCPULoad, errNoProcessorInfo)
	}
	return percent[0], nil
}

func (s *SystemProvider) Memory(ctx context.Context) (MemoryStat, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, introspectionError(FacetMemory, err)
	}
	return MemoryStat{Total: v.Total, Available: v.Available}, nil
}

func (s *SystemProvider) DiskStores(_ context.Context) ([]DiskStore, error) {
	info, err := ghw.Block(ghw.WithDisableWarnings())
	if err != nil {
		return nil, introspectionError(FacetDisks, err)
	}
	stores := make([]DiskStore, 0, len(info.Disks))
	for _, d := range info.Disks {
		if isVirtualDisk(d.Name) {
			continue
		}
		stores = append(stores, DiskStore{
			Model: d.Model,
			Size:  d.SizeBytes,
		})
	}
	return stores, nil
}

func isVirtualDisk(name string) bool {
	for _, prefix := range virtualDiskPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (s *SystemProvider) GraphicsCards(_ context.Context) ([]GraphicsCard, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, introspectionError(FacetGPUs, err)
	}
	vram, err := readVRAM()
	if err != nil {
		return nil, introspectionError(FacetGPUs, err)
	}
	return graphicsCards(info.GraphicsCards, vram), nil
}

// graphicsCards joins ghw cards with VRAM keyed by DRM card index. Cards
// without a DRM index or a published VRAM size get 0.
func graphicsCards(found []*ghw.GraphicsCard, vram map[int]uint64) []GraphicsCard {
	cards := make([]GraphicsCard, 0, len(found))
	for _, c := range found {
		name := c.Address
		if c.DeviceInfo != nil && c.DeviceInfo.Product != nil {
			name = c.DeviceInfo.Product.Name
		}
		card := GraphicsCard{Name: name}
		if c.Index >= 0 {
			card.VRAM = vram[c.Index]
		}
		cards = append(cards, card)
	}
	return cards
}

func (s *SystemProvider) ProcessCount(ctx context.Context) (int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return 0, introspectionError(FacetProcesses, err)
	}
	return len(pids), nil
}

func (s *SystemProvider) Processes(ctx context.Context) ([]ProcessStat, error) {
	ps, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, introspectionError(FacetProcesses, err)
	}
	stats := make([]ProcessStat, 0, len(ps))
	for _, p := range ps {
		stat, err := readProcess(ctx, p)
		if err != nil {
			if exited(err) {
				klog.V(4).Infof("process %d exited during enumeration", p.Pid)
				continue
			}
			return nil, introspectionError(FacetProcesses, err)
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

func readProcess(ctx context.Context, p *process.Process) (ProcessStat, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ProcessStat{}, err
	}
	ppid, err := p.PpidWithContext(ctx)
	if err != nil {
		return ProcessStat{}, err
	}
	status, err := p.StatusWithContext(ctx)
	if err != nil {
		return ProcessStat{}, err
	}
	state := StateUnknown
	if len(status) > 0 {
		state = ProcessState(status[0])
	}
	return ProcessStat{
		Name:  name,
		Pid:   p.Pid,
		Ppid:  ppid,
		State: state,
	}, nil
}

// exited reports whether err means the process is gone rather than unreadable.
func exited(err error) bool {
	return errors.Is(err, process.ErrorProcessNotRunning) || errors.Is(err, fs.ErrNotExist)
}

func (s *SystemProvider) Uptime(ctx context.Context) (uint64, error) {
	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, introspectionError(FacetUptime, err)
	}
	return uptime, nil
}

func (s *SystemProvider) OSVersion(ctx context.Context) (OSVersion, error) {
	v, err := readOSVersion(ctx)
	if err != nil {
		return OSVersion{}, introspectionError(FacetOS, err)
	}
	return v, nil
}

// platformVersion is the gopsutil view of the running OS, used where no
// richer release file exists.
func platformVersion(ctx context.Context) (OSVersion, error) {
	platform, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return OSVersion{}, err
	}
	if platform == "" {
		platform = family
	}
	return OSVersion{
		Family:  platform,
		Version: version,
	}, nil
}

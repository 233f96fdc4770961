package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/sysinfo"
)

type idleProvider struct{}

func (idleProvider) Processor(context.Context) (sysinfo.ProcessorStat, error) {
	return sysinfo.ProcessorStat{Name: "test", PhysicalCores: 1, LogicalCores: 2}, nil
}

func (idleProvider) CPULoad(context.Context, time.Duration) (float64, error) { return 5, nil }

func (idleProvider) Memory(context.Context) (sysinfo.MemoryStat, error) {
	return sysinfo.MemoryStat{}, nil
}

func (idleProvider) DiskStores(context.Context) ([]sysinfo.DiskStore, error) { return nil, nil }

func (idleProvider) GraphicsCards(context.Context) ([]sysinfo.GraphicsCard, error) {
	return nil, nil
}

func (idleProvider) ProcessCount(context.Context) (int, error) { return 0, nil }

func (idleProvider) Processes(context.Context) ([]sysinfo.ProcessStat, error) { return nil, nil }

func (idleProvider) Uptime(context.Context) (uint64, error) { return 1, nil }

func (idleProvider) OSVersion(context.Context) (sysinfo.OSVersion, error) {
	return sysinfo.OSVersion{Family: "test"}, nil
}

func TestNewSysmon_InvalidConfig(t *testing.T) {
	if _, err := NewSysmon(&Config{Port: 0}); !errors.Is(err, ErrInvalidPort) {
		t.Fatalf("NewSysmon() error = %v, want %v", err, ErrInvalidPort)
	}
}

func TestSysmon_StartStop(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "")
	s, err := newSysmon(DefaultConfig(), idleProvider{})
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	s.listen = func() (net.Listener, error) { return ln, nil }

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	tests := []struct {
		path string
		want int
	}{
		{"/healthz", http.StatusOK},
		{"/cpu", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, err := http.Get("http://" + ln.Addr().String() + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != tt.want {
			t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.want)
		}
	}

	s.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() error = %v", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Start() did not return after Stop()")
	}
}

func TestSysmon_ListenFailure(t *testing.T) {
	s, err := newSysmon(DefaultConfig(), idleProvider{})
	if err != nil {
		t.Fatal(err)
	}
	wantErr := errors.New("address in use")
	s.listen = func() (net.Listener, error) { return nil, wantErr }
	if err := s.Start(); !errors.Is(err, wantErr) {
		t.Fatalf("Start() error = %v, want %v", err, wantErr)
	}
}

func TestSysmon_NoActivatedSocket(t *testing.T) {
	t.Setenv("LISTEN_PID", "")
	t.Setenv("LISTEN_FDS", "")
	config := DefaultConfig()
	config.Systemd = true
	s, err := newSysmon(config, idleProvider{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.listener(); !errors.Is(err, ErrNoActivatedSocket) {
		t.Fatalf("listener() error = %v, want %v", err, ErrNoActivatedSocket)
	}
}

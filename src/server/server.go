package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/metrics"
	"github.com/FilipAndrei2/system-monitoring-rest-api/src/server/router"
	routerv1 "github.com/FilipAndrei2/system-monitoring-rest-api/src/server/router/v1"
	"github.com/FilipAndrei2/system-monitoring-rest-api/src/snapshot"
	"github.com/FilipAndrei2/system-monitoring-rest-api/src/sysinfo"
	"github.com/FilipAndrei2/system-monitoring-rest-api/src/version"
	"github.com/coreos/go-systemd/v22/activation"
	"github.com/coreos/go-systemd/v22/daemon"
	"k8s.io/klog/v2"
)

const ShutdownTimeout = 5 * time.Second

var ErrNoActivatedSocket = errors.New("no listening socket passed by systemd")

type Bootstrap interface {
	// Start serves until Stop is called or the listener fails.
	Start() error
	Stop()
}

type Sysmon struct {
	config *Config
	server router.Server
	listen func() (net.Listener, error)
	ctx    context.Context
	cancel context.CancelFunc
}

func NewSysmon(config *Config) (Bootstrap, error) {
	return newSysmon(config, sysinfo.NewSystemProvider())
}

func newSysmon(config *Config, provider sysinfo.Provider) (*Sysmon, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	routeServer := routerv1.NewRouteServer(snapshot.NewMapper(provider))
	s := &Sysmon{
		config: config,
		server: router.NewServer(routeServer, metrics.NewHandler(true, MaxRequestsInFlight)),
		ctx:    ctx,
		cancel: cancel,
	}
	s.listen = s.listener
	return s, nil
}

func (s *Sysmon) listener() (net.Listener, error) {
	if !s.config.Systemd {
		return net.Listen("tcp", s.config.ListenAddress())
	}
	listeners, err := activation.Listeners()
	if err != nil {
		return nil, err
	}
	for _, l := range listeners {
		if l != nil {
			return l, nil
		}
	}
	return nil, ErrNoActivatedSocket
}

func (s *Sysmon) Start() error {
	ln, err := s.listen()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           s.server.RestfulCont,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	klog.Infof("sysmon %s listening on %s", version.Info, ln.Addr())
	notify(daemon.SdNotifyReady)

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.ctx.Done():
	}

	klog.Infof("shutting down, waiting up to %s for in-flight requests", ShutdownTimeout)
	notify(daemon.SdNotifyStopping)
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Sysmon) Stop() {
	s.cancel()
}

// notify is a no-op outside systemd.
func notify(state string) {
	if _, err := daemon.SdNotify(false, state); err != nil {
		klog.Warningf("sd_notify %q: %v", state, err)
	}
}

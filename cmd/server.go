package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

type serverOptions struct {
	configPath string
	address    string
	port       int32
	systemd    bool
}

func (o *serverOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "optional YAML config file")
	flags.StringVar(&o.address, "address", "", "address to listen on, empty for all interfaces")
	flags.Int32VarP(&o.port, "port", "p", server.DefaultPort, "port to listen on")
	flags.BoolVar(&o.systemd, "systemd", false, "use the socket passed by systemd socket activation")
}

// config loads the file, then applies the flags the user set explicitly.
func (o *serverOptions) config(flags *pflag.FlagSet) (*server.Config, error) {
	config, err := server.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if flags.Changed("address") {
		config.Address = o.address
	}
	if flags.Changed("port") {
		config.Port = o.port
	}
	if flags.Changed("systemd") {
		config.Systemd = o.systemd
	}
	return config, config.Validate()
}

func ServerCommand(args []string) *cobra.Command {
	o := &serverOptions{}
	serverCommand := &cobra.Command{
		Use:               "server",
		Short:             "Serve host snapshots over HTTP.",
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := o.config(cmd.Flags())
			if err != nil {
				return err
			}
			sysmon, err := server.NewSysmon(config)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				klog.Infof("received shutdown signal")
				sysmon.Stop()
			}()
			return sysmon.Start()
		},
	}
	o.addFlags(serverCommand.Flags())
	return serverCommand
}

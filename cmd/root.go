package cmd

import (
	"flag"

	"github.com/FilipAndrei2/system-monitoring-rest-api/cmd/version"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func GetRootCmd(args []string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "sysmon",
		Short:             "sysmon host snapshot service.",
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		Long:              `Read-only HTTP API reporting processor, memory, disk, GPU, process and OS snapshots of this host.`,
	}
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
	rootCmd.SetArgs(args)

	rootCmd.AddCommand(ServerCommand(args))
	rootCmd.AddCommand(version.VersionCommand(args))

	return rootCmd
}

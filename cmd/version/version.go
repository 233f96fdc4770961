package version

import (
	"fmt"

	"github.com/FilipAndrei2/system-monitoring-rest-api/src/version"
	"github.com/spf13/cobra"
)

const banner = `
                                       
  ___ _   _ ___ _ __ ___   ___  _ __  
 / __| | | / __| '_ ` + "`" + ` _ \ / _ \| '_ \ 
 \__ \ |_| \__ \ | | | | | (_) | | | |
 |___/\__, |___/_| |_| |_|\___/|_| |_|
      |___/                           

host snapshots over HTTP
`

func VersionCommand(args []string) *cobra.Command {
	versionCommand := &cobra.Command{
		Use:               "version",
		Short:             "Print build information.",
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Info
			out := cmd.OutOrStdout()
			fmt.Fprint(out, banner)
			fmt.Fprintln(out, "Version: \t"+info.Version)
			fmt.Fprintln(out, "GitRevision: \t"+info.GitRevision)
			fmt.Fprintln(out, "GitBranch: \t"+info.GitBranch)
			fmt.Fprintln(out, "GolangVersion: \t"+info.GolangVersion)
			fmt.Fprintln(out, "BuildStatus: \t"+info.BuildStatus)
			fmt.Fprintln(out, "GitTag: \t"+info.GitTag)
			fmt.Fprintln(out, "Platform: \t"+info.Platform)
			fmt.Fprintln(out, "BuildDate: \t"+info.BuildDate)
		},
	}
	return versionCommand
}

package main

import (
	"os"

	"github.com/FilipAndrei2/system-monitoring-rest-api/cmd"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	if err := cmd.GetRootCmd(os.Args[1:]).Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

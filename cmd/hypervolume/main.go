package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/moo-lab/hypervolume/cmd/hypervolume/commands"
)

func main() {
	defer klog.Flush()
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"github.com/NVIDIA/versionspec/pkg/cli"
)

func main() {
	cli.Execute()
}

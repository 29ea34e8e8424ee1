package main

import (
	"github.com/arkane-systems/arkane-fileproperties-dss/cli"
)

func main() {
	cli.Start()
}

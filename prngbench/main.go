package main

import (
	"github.com/tutils/prngbench/cmd"
)

func main() {
	cmd.Execute()
}

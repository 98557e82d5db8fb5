package main

import (
	"github.com/katalvlaran/lvbio/cmd/lvbio/cmd"
)

func main() {
	cmd.Execute()
}

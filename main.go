package main

import (
	"github.com/tranvictor/zilname/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/tomhutch/minesweeper-go/internal/cli"
)

func main() {
	cli.Execute()
}

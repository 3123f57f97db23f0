// cubeview - interactive Rubik's Cube viewer for the terminal.
package main

import (
	"github.com/SeamusWaldron/cubeview/internal/cli"
)

func main() {
	cli.Execute()
}

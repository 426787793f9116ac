/*
 svgdark generates dark-mode variants of SVG assets by rewriting their
 color codes. With no arguments it processes ./res with the built-in
 palette; see `svgdark help` for config and watch modes.
*/

package main

import (
	"github.com/hoppxi/svgdark/internal/cmd"
)

func main() {
	cmd.Execute()
}

// Command taylortable derives finite-difference and time-marching schemes
// from their Taylor tables.
package main

import (
	"os"

	"github.com/katalvlaran/taylortable/cli"
)

func main() {
	os.Exit(cli.Execute())
}

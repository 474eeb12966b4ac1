// Command sssp computes single-source shortest paths over small weighted
// graphs and prints every vertex's distance and path.
//
// Usage:
//
//	sssp demo
//	sssp run --size 4 --edge 0,1,2 --edge 1,2,3 --source 0
//	sssp dot --source 0 > tree.dot
package main

import (
	"os"

	"github.com/safing/portbase/info"
	"github.com/safing/portbase/log"
)

func main() {
	info.Set("SSSP", "0.1.0", "MIT", false)

	err := newRootCmd().Execute()
	log.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}

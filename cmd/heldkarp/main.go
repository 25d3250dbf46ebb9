// Command heldkarp solves small Travelling Salesman instances exactly and
// optionally renders the optimal tour.
//
//	heldkarp solve 0,0 2,3 5,2 4,5
//	heldkarp solve --file cities.yaml --png tour.png --dot tour.dot
//	heldkarp matrix --file cities.yaml
//
// Defaults come from HELDKARP_* environment variables (see Config).
package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	a := &app{cfg: cfg}
	if err = newRootCmd(a).Execute(); err != nil {
		a.log().Error("command failed", "err", err)
		os.Exit(1)
	}
}

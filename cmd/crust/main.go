// Command crust translates a C/C++ token stream into Rust.
package main

import (
	"fmt"
	"os"

	"github.com/rocky01/crust/cmd/crust/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

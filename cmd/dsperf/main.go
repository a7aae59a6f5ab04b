// Command dsperf benchmarks the data structures of this module with
// generated data and checks their answers along the way.
package main

import (
	"os"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

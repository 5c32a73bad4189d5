// Command loghist reads floating point samples from standard input,
// updates a logarithmic-bucket histogram, and reports either the raw
// bin dump or the interpolated percentile table, optionally persisting
// the histogram to a file across runs.
package main

import "os"

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

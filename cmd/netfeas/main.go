// Command netfeas runs the path-cost resolver and the restricted union-find
// over YAML scenario files.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

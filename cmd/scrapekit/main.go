// Command scrapekit inspects the bundled scraping resources, prints request
// User-Agents and proxy settings, and imports resources into SQLite.
package main

import (
	"fmt"
	"os"
)

const Version = "1.0.0"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// passportctl is the terminal client for the passport service.
package main

import (
	"fmt"
	"os"

	"passport/internal/client/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

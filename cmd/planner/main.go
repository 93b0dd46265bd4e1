// Command planner is a terminal client for the AI project planning service.
package main

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/planner/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

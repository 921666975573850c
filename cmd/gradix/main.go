// Package main provides the gradix CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("gradix %s\n", version)
		return
	}

	fmt.Println("gradix - fixed-shape autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("The training demos live under examples/ (go run ./examples/nerf).")
}

package main

import (
	"fmt"
	"os"

	"hirebox/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s\n", err)
		os.Exit(1)
	}
}

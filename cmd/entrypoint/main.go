package main

import (
	// Import the cmd directory with root.go
	"github.com/redjax/hexify/cmd"
)

func main() {
	cmd.Execute()
}

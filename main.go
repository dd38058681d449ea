package main

import (
	"github.com/chrisjonesBSU/polyply-1.0/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

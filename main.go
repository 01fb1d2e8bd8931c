package main

import (
	"github.com/jjtimmons/superkmers/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

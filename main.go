package main

import (
	_ "go.uber.org/automaxprocs"

	"saltcrackr/cmd"
)

func main() {
	cmd.Execute()
}

package main

import "github.com/barspace/barspace/cmd"

func main() {
	cmd.Execute()
}

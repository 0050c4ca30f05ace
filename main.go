package main

import "github.com/cinderworks/solgen/cmd"

func main() {
	cmd.Execute()
}

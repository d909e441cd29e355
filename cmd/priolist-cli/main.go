package main

import "priolist/cmd/priolist-cli/cmd"

func main() {
	cmd.Execute()
}

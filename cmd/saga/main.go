package main

import "github.com/saga-io/saga/cmd/saga/cmd"

func main() {
	cmd.Execute()
}

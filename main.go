package main

import "github.com/geomesh/geodist/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/leadstack/leadform/cmd"

func main() {
	cmd.Execute()
}

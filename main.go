package main

import "github.com/treegen/treegen/cmd"

func main() {
	cmd.Execute()
}

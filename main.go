package main

import "github.com/zmz-dd/kids-vocab-learning/cmd"

func main() {
	cmd.Execute()
}

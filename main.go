package main

import "github.com/naka-gawa/pr-changelog/cmd"

func main() {
	cmd.Execute()
}

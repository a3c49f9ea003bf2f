package main

import "github.com/dotcommander/tyrefit/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mgaillard/souschef/cmd"

func main() {
	cmd.Execute()
}

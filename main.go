package main

import "blurbgen/cmd"

func main() {
	cmd.Execute()
}

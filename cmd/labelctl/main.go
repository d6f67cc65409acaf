package main

import "woolabels/internal/cmd"

func main() {
	cmd.Execute()
}

package main

import "grid-stats/cmd"

func main() {
	cmd.Execute()
}

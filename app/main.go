package main

import (
	"sdaprof/app/cmd"
)

func main() {
	cmd.Execute()
}

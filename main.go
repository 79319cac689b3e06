package main

import "github.com/haguru/userstub/cmd"

func main() {
	// parse the optional port argument, then serve until interrupted
	cmd.Execute()
}

package main

import "libris/cmd"

// execute is a variable so tests can intercept startup.
var execute = cmd.Execute

func main() {
	execute()
}

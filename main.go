package main

import "github.com/pbxplan/pbxplan/cmd"

func main() {
	cmd.Execute()
}

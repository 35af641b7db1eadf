package main

import "github.com/krfl/sidequest/cmd"

func main() {
	cmd.Execute()
}

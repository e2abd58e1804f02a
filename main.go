package main

import "github.com/olivier-w/clepi/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/nameshell/namesh/cmd"

func main() {
	cmd.Execute()
}

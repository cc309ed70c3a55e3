package main

import "content-validator/cmd"

func main() {
	cmd.Execute()
}

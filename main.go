package main

import "jacsonsite/cmd"

func main() {
	cmd.Execute()
}

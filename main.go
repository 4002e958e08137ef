package main

import "gitlab.com/begraf/spurkarte/cmd"

func main() {
	cmd.Execute()
}

package main

import "card-frame/cmd/cardexport/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/koki-develop/aart/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/hormigalabs/hormiga/cmd"

func main() {
	cmd.Execute()
}

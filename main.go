package main

import "github.com/cmmoran/emmetcpp/cmd"

func main() {
	cmd.Execute()
}

package main

import "resmigul/cmd/resmigul/root"

func main() {
	root.Execute()
}

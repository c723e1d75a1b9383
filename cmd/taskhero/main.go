package main

import "taskhero/cmd/taskhero/root"

func main() {
	root.Execute()
}

package main

import "github.com/perihelion-works/unbind/internal/cli"

func main() {
	cli.ExecuteUnbind()
}

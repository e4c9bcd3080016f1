package main

import "github.com/kovidgoyal/colormath/internal/cli"

func main() {
	cli.Execute()
}

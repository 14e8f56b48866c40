package main

import (
	"github.com/mvukas/rostertag/internal/cli"
)

func main() {
	cli.Execute()
}

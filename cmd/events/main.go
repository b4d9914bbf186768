package main

import (
	"os"

	"github.com/convox/events/pkg/cli"
)

var version = "dev"

func main() {
	c := cli.New("events", version)

	os.Exit(c.Execute(os.Args[1:]))
}

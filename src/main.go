package main

import (
	"context"

	"github.com/eriklarko/truthtable/src/commands"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}

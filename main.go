package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BottleButler/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Bottle Butler"), kong.Description("BottleButler recommends whisky bottles for your bar."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}

package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"droscher.com/CoffeeLedger/cmd"
)

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&cmd.CLI, kong.Name("Coffee Ledger"), kong.Description("CoffeeLedger keeps track of who made and drank the office coffee."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}

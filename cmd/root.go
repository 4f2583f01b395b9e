package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug logging"`

	Serve   ServeCmd   `cmd:"" default:"1"                    help:"Run the ledger server"`
	Migrate MigrateCmd `cmd:"" help:"Create or update the database schema"`
}

package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve     ServeCmd     `cmd:"" default:"1"                               help:"Run the server"`
	Migrate   MigrateCmd   `cmd:"" help:"Run database migrations"`
	Seed      SeedCmd      `cmd:"" help:"Load candidate bottles from a JSON file"`
	AddUser   AddUserCmd   `cmd:"" help:"Register a user and link their BAXUS bar" name:"add-user"`
	Recommend RecommendCmd `cmd:"" help:"Recommend bottles without a database"`
	Analyze   AnalyzeCmd   `cmd:"" help:"Analyze a collection without a database"`
}

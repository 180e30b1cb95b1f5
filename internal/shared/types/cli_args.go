package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	Date        string
	OutputPath  string
	Table       string
	Bucket      string
	TrendWindow int
	DryRun      bool
}

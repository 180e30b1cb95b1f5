package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/costview/aws-cost-dashboard-go/internal/adapter/driven/config"
	"github.com/costview/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/costview/aws-cost-dashboard-go/internal/shared/types"
	"github.com/costview/aws-cost-dashboard-go/pkg/logger"
	"github.com/costview/aws-cost-dashboard-go/pkg/version"
)

// RefreshFactory builds the refresh use case once the effective configuration
// is known. Injected from main so tests can substitute fakes.
type RefreshFactory func(ctx context.Context, cfg *types.Config, dryRun bool) (*usecase.RefreshUseCase, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	newRefresh RefreshFactory
	version    string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "cost-dashboard",
		Short:   "AWS Cost Dashboard refresh job",
		Long:    "Fetches daily AWS spend, classifies it by service category, persists per-service records and publishes a dashboard-ready summary document.",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("date", "d", "", "Target date to process (YYYY-MM-DD, default: yesterday UTC)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Local path for the dashboard document (default: cost_data.json)")
	rootCmd.PersistentFlags().String("table", "", "DynamoDB table holding per-service daily cost records")
	rootCmd.PersistentFlags().String("bucket", "", "S3 bucket to mirror the dashboard document to (empty disables mirroring)")
	rootCmd.PersistentFlags().IntP("window", "w", 0, "Trend window size in days (default: 30)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Compute and display the dashboard without writing records or documents")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetRefreshFactory sets the factory that wires up a refresh run.
func (app *CLIApp) SetRefreshFactory(factory RefreshFactory) {
	app.newRefresh = factory
}

// SetConfigRepository sets the configuration file loader.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetConsole sets the console implementation.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	date, _ := app.rootCmd.Flags().GetString("date")
	output, _ := app.rootCmd.Flags().GetString("output")
	table, _ := app.rootCmd.Flags().GetString("table")
	bucket, _ := app.rootCmd.Flags().GetString("bucket")
	window, _ := app.rootCmd.Flags().GetInt("window")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")

	return &types.CLIArgs{
		ConfigFile:  configFile,
		Date:        date,
		OutputPath:  output,
		Table:       table,
		Bucket:      bucket,
		TrendWindow: window,
		DryRun:      dryRun,
	}, nil
}

// resolveConfig layers environment, config file and CLI flags into the
// effective configuration.
func (app *CLIApp) resolveConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if args.ConfigFile != "" {
		fileCfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.MergeFile(fileCfg)
	}

	cfg.MergeArgs(args)

	if cfg.Table == "" {
		return nil, types.ErrTableNotConfigured
	}
	return cfg, nil
}

// runCommand is the main entry point for the CLI command.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	args, err := app.parseArgs()
	if err != nil {
		return err
	}

	cfg, err := app.resolveConfig(args)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		return err
	}
	defer logger.Sync()

	targetDate := time.Now().UTC().AddDate(0, 0, -1)
	if args.Date != "" {
		targetDate, err = time.Parse(entity.DateLayout, args.Date)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	uc, err := app.newRefresh(ctx, cfg, args.DryRun)
	if err != nil {
		return err
	}

	status := app.console.Status("Refreshing cost data...")
	result, doc, err := uc.Run(ctx, targetDate)
	status.Stop()

	if err != nil {
		app.console.LogError("Cost refresh failed: %s", err)
		return err
	}
	if result.Status != entity.RunStatusSuccess {
		app.console.LogError("Cost refresh failed: %s", result.Message)
		return errors.New(result.Message)
	}

	app.displaySummary(result, doc)
	return nil
}

// displaySummary renders the per-category table and the trend bars for a
// completed run.
func (app *CLIApp) displaySummary(result entity.RunResult, doc *entity.DashboardDocument) {
	if doc == nil {
		return
	}

	table := app.console.CreateTable()
	table.AddColumn("Category")
	table.AddColumn("Current")
	table.AddColumn("Previous")
	for _, category := range entity.Categories {
		table.AddRow(string(category),
			formatAmount(doc.Categories[category]),
			formatAmount(doc.CategoriesPrevious[category]))
	}
	table.AddRow("Total", formatAmount(doc.TotalSpend), "")
	app.console.Print(table.Render())

	app.console.DisplayTrendBars(doc.Trend)

	app.console.LogSuccess("%s for %s (total: %s)", result.Message, result.Date, formatAmount(result.TotalSpend))
}

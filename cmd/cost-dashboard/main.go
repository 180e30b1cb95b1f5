package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	awsadapter "github.com/costview/aws-cost-dashboard-go/internal/adapter/driven/aws"
	"github.com/costview/aws-cost-dashboard-go/internal/adapter/driven/config"
	"github.com/costview/aws-cost-dashboard-go/internal/adapter/driven/export"
	"github.com/costview/aws-cost-dashboard-go/internal/adapter/driving/cli"
	"github.com/costview/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/costview/aws-cost-dashboard-go/internal/shared/types"
	"github.com/costview/aws-cost-dashboard-go/pkg/console"
	"github.com/costview/aws-cost-dashboard-go/pkg/version"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	app := cli.NewCLIApp(version.Version)
	app.SetConfigRepository(config.NewConfigRepository())
	app.SetConsole(console.NewConsole())
	app.SetRefreshFactory(newRefreshUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRefreshUseCase wires the AWS adapters and sinks for a refresh run using
// the effective configuration.
func newRefreshUseCase(ctx context.Context, cfg *types.Config, dryRun bool) (*usecase.RefreshUseCase, error) {
	clients, err := awsadapter.NewClients(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}

	var mirror repository.SinkRepository
	if cfg.Bucket != "" {
		mirror = awsadapter.NewS3Sink(clients, cfg.Bucket)
	}

	return usecase.NewRefreshUseCase(usecase.RefreshParams{
		Billing:     awsadapter.NewBillingRepository(clients),
		Records:     awsadapter.NewRecordRepository(clients, cfg.Table),
		PrimarySink: export.NewDocumentWriter(cfg.OutputPath),
		MirrorSink:  mirror,
		Categorizer: usecase.NewCategorizerWithKeywords(cfg.CategoryKeywords),
		TrendWindow: cfg.TrendWindow,
		DryRun:      dryRun,
	}), nil
}

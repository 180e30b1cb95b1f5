package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Clients bundles the AWS service clients used by the driven adapters so the
// shared config is loaded once.
type Clients struct {
	CostExplorer *costexplorer.Client
	DynamoDB     *dynamodb.Client
	S3           *s3.Client
	STS          *sts.Client
}

// NewClients loads the default AWS config for the given region and constructs
// the service clients. Cost Explorer is a global API served out of us-east-1
// regardless of the configured region.
func NewClients(ctx context.Context, region string) (*Clients, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	ceCfg := cfg.Copy()
	ceCfg.Region = "us-east-1"

	return &Clients{
		CostExplorer: costexplorer.NewFromConfig(ceCfg),
		DynamoDB:     dynamodb.NewFromConfig(cfg),
		S3:           s3.NewFromConfig(cfg),
		STS:          sts.NewFromConfig(cfg),
	}, nil
}

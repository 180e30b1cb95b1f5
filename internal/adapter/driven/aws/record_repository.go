package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbTypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/repository"
)

// RecordRepositoryImpl implements RecordRepository on a DynamoDB table with
// record_date as the partition key and service_name as the sort key, giving
// PutItem the upsert semantics the pipeline relies on.
type RecordRepositoryImpl struct {
	db    *dynamodb.Client
	table string
}

// NewRecordRepository creates a new DynamoDB backed record repository.
func NewRecordRepository(clients *Clients, table string) repository.RecordRepository {
	return &RecordRepositoryImpl{db: clients.DynamoDB, table: table}
}

// PutRecord upserts one cost record keyed by (record_date, service_name).
func (r *RecordRepositoryImpl) PutRecord(ctx context.Context, record entity.CostRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal cost record: %w", err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put record %s/%s: %w", record.RecordDate, record.ServiceName, err)
	}
	return nil
}

// QueryByDate returns every cost record persisted for a single day.
func (r *RecordRepositoryImpl) QueryByDate(ctx context.Context, recordDate string) ([]entity.CostRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("record_date = :d"),
		ExpressionAttributeValues: map[string]ddbTypes.AttributeValue{
			":d": &ddbTypes.AttributeValueMemberS{Value: recordDate},
		},
	}

	var records []entity.CostRecord
	paginator := dynamodb.NewQueryPaginator(r.db, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query records for %s: %w", recordDate, err)
		}
		var pageRecords []entity.CostRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRecords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal records for %s: %w", recordDate, err)
		}
		records = append(records, pageRecords...)
	}
	return records, nil
}

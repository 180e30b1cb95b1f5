package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/repository"
)

// documentKey is the fixed object key the dashboard frontend reads from.
const documentKey = "data/cost_data.json"

// S3Sink mirrors the dashboard document to an S3 bucket.
type S3Sink struct {
	client *s3.Client
	bucket string
}

// NewS3Sink creates a new S3 backed document sink.
func NewS3Sink(clients *Clients, bucket string) repository.SinkRepository {
	return &S3Sink{client: clients.S3, bucket: bucket}
}

// WriteDocument serializes the document and replaces the object at the fixed
// key, returning the written S3 location.
func (s *S3Sink) WriteDocument(ctx context.Context, doc entity.DashboardDocument) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal dashboard document: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(documentKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document to s3://%s/%s: %w", s.bucket, documentKey, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, documentKey), nil
}

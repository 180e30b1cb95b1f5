package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/repository"
)

// DocumentWriterImpl writes the dashboard document to a local path. It is the
// primary sink: a run only reports success once this write completes.
type DocumentWriterImpl struct {
	path string
}

// NewDocumentWriter creates a new local document writer.
func NewDocumentWriter(path string) repository.SinkRepository {
	return &DocumentWriterImpl{path: path}
}

// WriteDocument serializes the document as indented JSON and fully replaces
// the file at the configured path, returning the absolute location.
func (w *DocumentWriterImpl) WriteDocument(_ context.Context, doc entity.DashboardDocument) (string, error) {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(w.path)
}

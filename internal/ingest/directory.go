package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/quotecraft/rfq-analyzer/constants"
	"github.com/quotecraft/rfq-analyzer/internal/entity"
)

// ScanDirectory loads every supported document in dir, non-recursively,
// sorted by file name. Files with an unsupported extension are skipped with
// a log line, as are files whose detected content type contradicts their
// extension.
func ScanDirectory(dir string, logger *slog.Logger) ([]entity.UploadedDocument, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var docs []entity.UploadedDocument
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		format := constants.MapExtToFormat(filepath.Ext(name))
		if format == "" {
			logger.Debug("ingest.skip_unsupported", "file", name)
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		mt := mimetype.Detect(data)
		switch format {
		case constants.PDF:
			if !mt.Is("application/pdf") {
				logger.Warn("ingest.skip_mismatch", "file", name, "detected", mt.String())
				continue
			}
		case constants.IMAGE:
			if !strings.HasPrefix(mt.String(), "image/") {
				logger.Warn("ingest.skip_mismatch", "file", name, "detected", mt.String())
				continue
			}
		}

		docs = append(docs, entity.UploadedDocument{
			Name:   name,
			Format: format,
			Data:   data,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	logger.Info("ingest.scan.ok", "dir", dir, "documents", len(docs))
	return docs, nil
}

// LoadFile loads a single document, verifying its extension and content.
func LoadFile(path string) (entity.UploadedDocument, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return entity.UploadedDocument{}, fmt.Errorf("unsupported file extension on %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.UploadedDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	return entity.UploadedDocument{
		Name:   filepath.Base(path),
		Format: format,
		Data:   data,
	}, nil
}

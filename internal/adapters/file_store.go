package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/tmsim/pkg/domain"
)

// FileStore implements ports.ResultStore using the local filesystem.
// Every record produces two files in BasePath: the plain trace file named
// after the record ID (e.g. "add_3_5") and a "<id>.json" sidecar used by Load.
type FileStore struct {
	BasePath string
}

// NewFileStore creates a new FileStore with the given base path.
// If basePath is empty, it defaults to the current directory.
func NewFileStore(basePath string) *FileStore {
	if basePath == "" {
		basePath = "."
	}
	return &FileStore{BasePath: basePath}
}

// TracePath returns the path of the plain trace file of a record.
func (f *FileStore) TracePath(id string) string {
	return filepath.Join(f.BasePath, id)
}

func (f *FileStore) recordPath(id string) string {
	return filepath.Join(f.BasePath, id+".json")
}

func checkID(id string) error {
	if id == "" {
		return fmt.Errorf("record id cannot be empty")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("invalid record id %q", id)
	}
	return nil
}

// Save writes the trace file and the JSON record.
func (f *FileStore) Save(ctx context.Context, rec *domain.Record) error {
	if err := checkID(rec.ID); err != nil {
		return err
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure record directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := os.WriteFile(f.TracePath(rec.ID), []byte(rec.Trace), 0644); err != nil {
		return fmt.Errorf("failed to write trace file: %w", err)
	}
	if err := os.WriteFile(f.recordPath(rec.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}

	return nil
}

// Load retrieves the record from its JSON file.
func (f *FileStore) Load(ctx context.Context, id string) (*domain.Record, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &rec, nil
}

// Delete removes both files of a record.
func (f *FileStore) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	for _, path := range []string{f.recordPath(id), f.TracePath(id)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete record file: %w", err)
		}
	}

	return nil
}

// List returns the IDs of all records with a JSON file.
func (f *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}

	return ids, nil
}

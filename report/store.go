package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists article reports as one JSON file per report in a directory.
type Store struct {
	dir string
}

// ReadError describes a failure to read a single report file.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

// ListResult contains the results of listing reports, including any per-file
// errors that occurred during the operation.
type ListResult struct {
	Reports []ArticleReport
	Errors  []ReadError
}

// NewStore creates a report store backed by the given directory.
func NewStore(dir string) (*Store, error) {
	// 0700: owner-only access
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Add saves a report to the store, keyed by its ID.
func (s *Store) Add(r ArticleReport) error {
	filename := filepath.Join(s.dir, r.ID.String()+".json")

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	// 0600: owner-only read/write
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// List returns all reports in the store. Corrupted or invalid files are
// collected in the result's Errors slice rather than causing the entire
// operation to fail. A non-nil error return indicates a total failure (e.g.,
// the storage directory is unreadable).
func (s *Store) List() (*ListResult, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read report directory: %w", err)
	}

	result := &ListResult{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		filename := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(filename)
		if err != nil {
			result.Errors = append(result.Errors, ReadError{
				Filename: entry.Name(),
				Err:      err,
			})
			continue
		}

		var r ArticleReport
		if err := json.Unmarshal(data, &r); err != nil {
			result.Errors = append(result.Errors, ReadError{
				Filename: entry.Name(),
				Err:      err,
			})
			continue
		}

		result.Reports = append(result.Reports, r)
	}

	return result, nil
}

// Get retrieves a report by its ID. Returns nil if the report does not
// exist (not an error).
func (s *Store) Get(id uuid.UUID) (*ArticleReport, error) {
	filename := filepath.Join(s.dir, id.String()+".json")

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var r ArticleReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &r, nil
}

// Delete removes a report from the store by its ID.
func (s *Store) Delete(id uuid.UUID) error {
	filename := filepath.Join(s.dir, id.String()+".json")
	if err := os.Remove(filename); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

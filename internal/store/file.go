package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

// fileStore keeps the layout state as a single JSON document on local disk.
type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed state store in dir, creating dir if needed.
func NewFileStore(dir string) (*fileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewDatabaseError("open", "failed to create data directory", err)
	}
	return &fileStore{path: filepath.Join(dir, StateKey+".json")}, nil
}

func (s *fileStore) Load(_ context.Context) (*models.LayoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NewNotFoundError("layout state not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to read layout state", err)
	}
	return decodeEnvelope(data)
}

func (s *fileStore) Save(_ context.Context, state models.LayoutState) error {
	data, err := encodeEnvelope(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// write-then-rename so readers never see a partial document
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errs.NewDatabaseError("write", "failed to write layout state", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errs.NewDatabaseError("write", "failed to replace layout state", err)
	}
	return nil
}

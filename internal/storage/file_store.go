package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/repository"
)

// StateFileName is the single file under the state directory that holds every key
const StateFileName = "state.json"

// FileStore keeps all keys in <dir>/state.json. PutAll rewrites the whole
// file through one rename, so readers see either the old or the new set.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates dir if needed and returns a store rooted there
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errs.Wrap(err, "failed to create state directory")
	}
	return &FileStore{dir: dir}, nil
}

var _ repository.KeyValueStore = (*FileStore)(nil)

func (f *FileStore) path() string {
	return filepath.Join(f.dir, StateFileName)
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return errs.Newf("invalid key %q", key)
	}
	return nil
}

func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	logger.StoreCall("file", "Get", "key", key)
	entries, err := f.read()
	if err != nil {
		logger.StoreResult("file", "Get", err, "key", key)
		return nil, err
	}

	value, ok := entries[key]
	logger.StoreResult("file", "Get", nil, "key", key, "found", ok)
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	return value, nil
}

// PutAll merges entries into the current file content and replaces the file
// in one rename. A failure before the rename leaves the previous file intact.
func (f *FileStore) PutAll(ctx context.Context, entries map[string][]byte) error {
	for key := range entries {
		if err := validKey(key); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	logger.StoreCall("file", "PutAll", "keys", len(entries))
	merged, err := f.read()
	if err != nil {
		logger.StoreResult("file", "PutAll", err)
		return err
	}
	for key, value := range entries {
		merged[key] = value
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return errs.Wrap(err, "failed to encode state file")
	}

	tmp, err := writeTemp(f.dir, data)
	if err != nil {
		logger.StoreResult("file", "PutAll", err)
		return err
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		os.Remove(tmp)
		logger.StoreResult("file", "PutAll", err, "path", f.path())
		return errs.Wrap(err, "failed to replace state file")
	}

	logger.StoreResult("file", "PutAll", nil, "keys", len(entries))
	return nil
}

// read returns the decoded file content; a missing file is an empty store
func (f *FileStore) read() (map[string][]byte, error) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]byte), nil
		}
		return nil, errs.Wrap(err, "failed to read state file")
	}

	entries := make(map[string][]byte)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errs.Wrap(err, "failed to decode state file")
	}
	return entries, nil
}

func writeTemp(dir string, data []byte) (string, error) {
	file, err := os.CreateTemp(dir, "."+StateFileName+"-*.tmp")
	if err != nil {
		return "", errs.Wrap(err, "failed to create temp file")
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		os.Remove(file.Name())
		return "", errs.Wrap(err, "failed to write temp file")
	}
	if err := file.Sync(); err != nil {
		os.Remove(file.Name())
		return "", errs.Wrap(err, "failed to sync temp file")
	}
	return file.Name(), nil
}

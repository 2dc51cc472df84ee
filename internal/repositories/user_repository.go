package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"awards_backend/internal/models"
)

// UserRepository persists the whole user collection as a single JSON
// document. Every mutation is a full read-modify-write of the file,
// serialized through one mutex so concurrent requests cannot lose
// updates to each other.
type UserRepository struct {
	path string
	mu   sync.Mutex
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

// Path returns the store file location.
func (r *UserRepository) Path() string {
	return r.path
}

// Load reads the current user collection. A missing store file is an
// empty collection, not an error.
func (r *UserRepository) Load() (*models.Database, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// View runs fn with the loaded collection under the store lock without
// writing anything back.
func (r *UserRepository) View(fn func(db *models.Database) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.load()
	if err != nil {
		return err
	}
	return fn(db)
}

// Update runs fn inside a locked read-modify-write cycle. The file is
// rewritten only when fn succeeds, so a rejected operation leaves the
// store untouched.
func (r *UserRepository) Update(fn func(db *models.Database) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.load()
	if err != nil {
		return err
	}

	if err := fn(db); err != nil {
		return err
	}

	return r.save(db)
}

func (r *UserRepository) load() (*models.Database, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &models.Database{Users: []*models.User{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user store %s: %w", r.path, err)
	}

	db := &models.Database{}
	if err := json.Unmarshal(raw, db); err != nil {
		return nil, fmt.Errorf("parse user store %s: %w", r.path, err)
	}
	if db.Users == nil {
		db.Users = []*models.User{}
	}
	return db, nil
}

// save writes the document through a temp file in the same directory and
// renames it over the target, so readers never observe a partial write.
// Non-ASCII text is stored unescaped, with 2-space indentation.
func (r *UserRepository) save(db *models.Database) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		tmp.Close()
		return fmt.Errorf("encode user store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace user store %s: %w", r.path, err)
	}
	return nil
}

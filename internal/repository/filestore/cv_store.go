package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"go-vacancy-backend/internal/domain"
)

// CVSubdir is where résumés live below the upload root.
const CVSubdir = "cvs"

// DiskStore writes uploads under root/sub with names of the form
// <epoch-millis>-<random-int><ext>. Saved files are reported by their
// public path, <domain.UploadsURLPrefix>/sub/<name>, whatever root is.
type DiskStore struct {
	root string
	sub  string
	now  func() time.Time
	rand func() int64
}

// NewCVStore returns a store writing into <root>/cvs.
func NewCVStore(root string) *DiskStore {
	return &DiskStore{
		root: root,
		sub:  CVSubdir,
		now:  time.Now,
		rand: func() int64 { return rand.Int63n(1e9 + 1) },
	}
}

var _ domain.FileStore = (*DiskStore)(nil)

// Dir is the directory files are written to.
func (s *DiskStore) Dir() string {
	return filepath.Join(s.root, s.sub)
}

// EnsureDir creates the destination directory if absent.
func (s *DiskStore) EnsureDir() error {
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.Dir(), err)
	}
	return nil
}

// Save writes r to a freshly named file and returns its public path,
// e.g. uploads/cvs/1700000000123-42.pdf. A failed write leaves nothing
// behind.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.EnsureDir(); err != nil {
		return "", err
	}

	ext := filepath.Ext(filepath.Base(filepath.ToSlash(originalName)))

	var (
		f     *os.File
		name  string
		local string
		err   error
	)
	// a name clash within the same millisecond is retried with a new suffix
	for attempt := 0; attempt < 3; attempt++ {
		name = s.newName(ext)
		local = filepath.Join(s.Dir(), name)
		f, err = os.OpenFile(local, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil || !errors.Is(err, os.ErrExist) {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("create %s: %w", local, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(local)
		return "", fmt.Errorf("write %s: %w", local, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(local)
		return "", fmt.Errorf("close %s: %w", local, err)
	}

	return s.PublicPath(name), nil
}

// PublicPath is the URL path, without leading slash, a stored file is
// served under.
func (s *DiskStore) PublicPath(name string) string {
	return path.Join(domain.UploadsURLPrefix, s.sub, name)
}

func (s *DiskStore) newName(ext string) string {
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + strconv.FormatInt(s.rand(), 10) + ext
}

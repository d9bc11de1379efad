package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/ports"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memFS is an in-memory ModFileSystem.
type memFS struct {
	mu      sync.Mutex
	files   map[string][]byte
	dirs    map[string]bool
	failOn  string
	openErr error
}

func newMemFS() *memFS {
	return &memFS{files: map[string][]byte{}, dirs: map[string]bool{}}
}

func (m *memFS) OpenRoot(dir string) (ports.ModRoot, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	dir = filepath.ToSlash(dir)
	m.mu.Lock()
	m.dirs[dir] = true
	m.mu.Unlock()
	return &memRoot{fs: m, dir: dir}, nil
}

func (m *memFS) file(p string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[p]
	return string(data), ok
}

func (m *memFS) hasDir(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[p]
}

type memRoot struct {
	fs  *memFS
	dir string
}

func (r *memRoot) abs(rel string) (string, error) {
	if path.IsAbs(rel) || strings.HasPrefix(path.Clean(rel), "..") {
		return "", fmt.Errorf("path escapes root: %s", rel)
	}
	return path.Join(r.dir, rel), nil
}

func (r *memRoot) MkdirAll(rel string) error {
	p, err := r.abs(rel)
	if err != nil {
		return err
	}
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	for ; p != r.dir && p != "."; p = path.Dir(p) {
		r.fs.dirs[p] = true
	}
	return nil
}

func (r *memRoot) WriteFile(rel string, data []byte) error {
	p, err := r.abs(rel)
	if err != nil {
		return err
	}
	if r.fs.failOn != "" && strings.HasSuffix(p, r.fs.failOn) {
		return fmt.Errorf("disk full")
	}
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	r.fs.files[p] = append([]byte(nil), data...)
	return nil
}

func (r *memRoot) Exists(rel string) bool {
	p, err := r.abs(rel)
	if err != nil {
		return false
	}
	r.fs.mu.Lock()
	defer r.fs.mu.Unlock()
	_, isFile := r.fs.files[p]
	return isFile || r.fs.dirs[p]
}

func (r *memRoot) Path() string { return r.dir }
func (r *memRoot) Close() error { return nil }

type jsonEncoder struct{}

func (jsonEncoder) Encode(doc any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

type stubReadme struct{}

func (stubReadme) RenderReadme(info *entities.ModInfo) ([]byte, error) {
	return []byte("# " + info.Name + "\n"), nil
}

type fakeLocker struct {
	mu     sync.Mutex
	locked []string
	held   bool
}

func (l *fakeLocker) Lock(_ context.Context, dir string) (func() error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locked = append(l.locked, filepath.ToSlash(dir))
	l.held = true
	return func() error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held = false
		return nil
	}, nil
}

type staticLoader struct {
	manifest func() *entities.Manifest
	err      error
}

func (s staticLoader) Load(string) (*entities.Manifest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.manifest(), nil
}

type recordingValidator struct {
	mu     sync.Mutex
	kinds  []string
	reject string
}

func (v *recordingValidator) Validate(kind string, _ []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.kinds = append(v.kinds, kind)
	if kind == v.reject {
		return fmt.Errorf("schema mismatch")
	}
	return nil
}

type chanNotifier struct {
	ch chan struct{}
}

func (n *chanNotifier) Watch(ctx context.Context, _ string) (<-chan struct{}, error) {
	out := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-n.ch:
				if !ok {
					return
				}
				out <- struct{}{}
			}
		}
	}()
	return out, nil
}

package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// LockFile is created in a mod folder while a build writes to it.
const LockFile = ".modmaker.lock"

const lockRetryDelay = 100 * time.Millisecond

// DirectoryLocker takes an advisory file lock on a mod folder.
type DirectoryLocker struct{}

// NewDirectoryLocker creates a new directory locker.
func NewDirectoryLocker() *DirectoryLocker {
	return &DirectoryLocker{}
}

// Lock creates dir if needed and blocks until <dir>/.modmaker.lock is held
// or ctx is done.
func (l *DirectoryLocker) Lock(ctx context.Context, dir string) (func() error, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create mod directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, LockFile))
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("mod directory %s is locked by another build", dir)
	}
	return lock.Unlock, nil
}

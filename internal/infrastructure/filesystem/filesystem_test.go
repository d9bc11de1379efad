package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModFileSystem_WriteAndExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mymod")

	root, err := NewModFileSystem().OpenRoot(dir)
	require.NoError(t, err)
	defer func() { _ = root.Close() }()

	assert.Equal(t, dir, root.Path())
	assert.False(t, root.Exists("modinfo.json"))

	require.NoError(t, root.MkdirAll("assets/mymod/recipes/grid"))
	require.NoError(t, root.WriteFile("assets/mymod/recipes/grid/pickaxe.json", []byte("{}\n")))
	require.NoError(t, root.WriteFile("modinfo.json", []byte("{}\n")))

	assert.True(t, root.Exists("modinfo.json"))
	assert.True(t, root.Exists("assets/mymod/recipes/grid"))

	data, err := os.ReadFile(filepath.Join(dir, "assets", "mymod", "recipes", "grid", "pickaxe.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestModFileSystem_RejectsEscapes(t *testing.T) {
	base := t.TempDir()
	root, err := NewModFileSystem().OpenRoot(filepath.Join(base, "mymod"))
	require.NoError(t, err)
	defer func() { _ = root.Close() }()

	assert.Error(t, root.WriteFile("../outside.json", []byte("x")))
	assert.Error(t, root.MkdirAll("../elsewhere"))

	_, err = os.Stat(filepath.Join(base, "outside.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestModFileSystem_ConcurrentWrites(t *testing.T) {
	root, err := NewModFileSystem().OpenRoot(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = root.Close() }()
	require.NoError(t, root.MkdirAll("itemtypes"))

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, root.WriteFile("itemtypes/"+name+".json", []byte(name)))
		}()
	}
	wg.Wait()

	for _, name := range []string{"a", "b", "c", "d"} {
		assert.True(t, root.Exists("itemtypes/"+name+".json"))
	}
}

func TestDirectoryLocker(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mymod")
	locker := NewDirectoryLocker()

	unlock, err := locker.Lock(context.Background(), dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, LockFile))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, dir)
	assert.Error(t, err, "second lock waits until the context expires")

	require.NoError(t, unlock())

	unlock, err = locker.Lock(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, unlock())
}

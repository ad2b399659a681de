package shortcuts

import (
	"testing"

	"github.com/arthur-debert/waypoint/pkg/errors"
	"github.com/arthur-debert/waypoint/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePath = "/opt/waypoint/waypoint.config.txt"

func newTestStore(t *testing.T, content string) (*Store, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(mem, storePath, []byte(content), 0644))
	}
	return New(filesystem.NewAferoFS(mem), storePath), mem
}

func readStore(t *testing.T, mem afero.Fs) string {
	t.Helper()
	data, err := afero.ReadFile(mem, storePath)
	require.NoError(t, err)
	return string(data)
}

func TestLoad(t *testing.T) {
	t.Run("creates missing file", func(t *testing.T) {
		store, mem := newTestStore(t, "")

		m, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, m)

		exists, err := afero.Exists(mem, storePath)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Empty(t, readStore(t, mem))
	})

	t.Run("parses existing file", func(t *testing.T) {
		store, _ := newTestStore(t, "d = C:\\Users\\me\\Desktop\ngarbage\n")

		m, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, Mapping{"d": `C:\Users\me\Desktop`}, m)
	})

	t.Run("read failure is an io error", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, mem.MkdirAll(storePath, 0755))
		store := New(filesystem.NewAferoFS(mem), storePath)

		_, err := store.Load()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
		assert.Equal(t, storePath, errors.GetErrorDetails(err)["path"])
	})

	t.Run("unwritable location is an io error", func(t *testing.T) {
		ro := afero.NewReadOnlyFs(afero.NewMemMapFs())
		store := New(filesystem.NewAferoFS(ro), storePath)

		_, err := store.Load()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	})
}

func TestAdd(t *testing.T) {
	t.Run("inserts and persists", func(t *testing.T) {
		store, mem := newTestStore(t, "a = 1\n")
		m, err := store.Load()
		require.NoError(t, err)

		next, err := store.Add(m, "d", `C:\Users\me\Desktop`)
		require.NoError(t, err)

		assert.Equal(t, Mapping{"a": "1", "d": `C:\Users\me\Desktop`}, next)
		assert.Equal(t, Mapping{"a": "1"}, m, "input mapping must not be mutated")
		assert.Equal(t, "a = 1\nd = C:\\Users\\me\\Desktop\n", readStore(t, mem))
	})

	t.Run("first write wins", func(t *testing.T) {
		store, mem := newTestStore(t, "")
		m, err := store.Load()
		require.NoError(t, err)

		once, err := store.Add(m, "k", "v1")
		require.NoError(t, err)
		twice, err := store.Add(once, "k", "v2")
		require.NoError(t, err)

		assert.Equal(t, once, twice)
		assert.Equal(t, "v1", twice["k"])
		assert.Equal(t, "k = v1\n", readStore(t, mem))
	})

	t.Run("existing key does not touch the file", func(t *testing.T) {
		store, mem := newTestStore(t, "k = v1\nmalformed line\n")
		m, err := store.Load()
		require.NoError(t, err)

		_, err = store.Add(m, "k", "v2")
		require.NoError(t, err)

		assert.Equal(t, "k = v1\nmalformed line\n", readStore(t, mem))
	})

	t.Run("invalid key leaves file unchanged", func(t *testing.T) {
		store, mem := newTestStore(t, "a = 1\n")
		m, err := store.Load()
		require.NoError(t, err)

		got, err := store.Add(m, "bad key", "value")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKey))
		assert.Equal(t, "bad key", errors.GetErrorDetails(err)["key"])
		assert.Equal(t, m, got)
		assert.Equal(t, "a = 1\n", readStore(t, mem))
	})

	t.Run("multi line value is rejected", func(t *testing.T) {
		store, mem := newTestStore(t, "a = 1\n")
		m, err := store.Load()
		require.NoError(t, err)

		_, err = store.Add(m, "b", "line1\nline2")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidValue))
		assert.Equal(t, "a = 1\n", readStore(t, mem))
	})

	t.Run("empty key is a missing argument", func(t *testing.T) {
		store, _ := newTestStore(t, "")

		_, err := store.Add(Mapping{}, "", "v")
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingArgument))
	})

	t.Run("write failure keeps the old mapping", func(t *testing.T) {
		ro := afero.NewReadOnlyFs(afero.NewMemMapFs())
		store := New(filesystem.NewAferoFS(ro), storePath)
		m := Mapping{"a": "1"}

		got, err := store.Add(m, "b", "2")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
		assert.Equal(t, m, got)
	})
}

func TestRemove(t *testing.T) {
	t.Run("deletes and persists", func(t *testing.T) {
		store, mem := newTestStore(t, "a = 1\nb = 2\n")
		m, err := store.Load()
		require.NoError(t, err)

		next, err := store.Remove(m, "a")
		require.NoError(t, err)

		assert.Equal(t, Mapping{"b": "2"}, next)
		assert.True(t, m.Has("a"), "input mapping must not be mutated")
		assert.Equal(t, "b = 2\n", readStore(t, mem))
	})

	t.Run("is idempotent", func(t *testing.T) {
		store, mem := newTestStore(t, "a = 1\nb = 2\n")
		m, err := store.Load()
		require.NoError(t, err)

		once, err := store.Remove(m, "a")
		require.NoError(t, err)
		twice, err := store.Remove(once, "a")
		require.NoError(t, err)

		assert.Equal(t, once, twice)
		assert.Equal(t, "b = 2\n", readStore(t, mem))
	})

	t.Run("absent key still rewrites", func(t *testing.T) {
		store, mem := newTestStore(t, "a = 1\njunk\n")
		m, err := store.Load()
		require.NoError(t, err)

		next, err := store.Remove(m, "missing")
		require.NoError(t, err)

		assert.Equal(t, m, next)
		assert.Equal(t, "a = 1\n", readStore(t, mem), "rewrite drops malformed lines")
	})

	t.Run("empty key is a missing argument", func(t *testing.T) {
		store, _ := newTestStore(t, "")

		_, err := store.Remove(Mapping{}, "")
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingArgument))
	})
}

func TestRewriteRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, "")
	m := Mapping{
		"d":      `C:\Users\me\Desktop`,
		"eq":     "a = b",
		"token":  "[d]",
		"spaces": "  padded  ",
		"empty":  "",
	}

	require.NoError(t, store.Rewrite(m))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestRewriteCreatesParentDirectory(t *testing.T) {
	mem := afero.NewMemMapFs()
	store := New(filesystem.NewAferoFS(mem), "/fresh/dir/waypoint.config.txt", WithFileMode(0600))

	require.NoError(t, store.Rewrite(Mapping{"a": "1"}))

	info, err := mem.Stat("/fresh/dir/waypoint.config.txt")
	require.NoError(t, err)
	assert.Equal(t, "/fresh/dir/waypoint.config.txt", store.Path())
	assert.Equal(t, int64(len("a = 1\n")), info.Size())
}

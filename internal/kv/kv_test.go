package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abatilo/checkmate/internal/kv"
)

func backends(t *testing.T) map[string]kv.Backend {
	t.Helper()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	sqlBackend, err := kv.NewSQLBackend(ctx, "sqlite3", filepath.Join(t.TempDir(), "checkmate.db"))
	require.NoError(t, err)

	all := map[string]kv.Backend{
		"memory": kv.NewMemoryBackend(),
		"file":   kv.NewFileBackend(filepath.Join(t.TempDir(), "data")),
		"redis":  kv.NewRedisBackendWithClient(client, "checkmate:"),
		"sql":    sqlBackend,
	}
	t.Cleanup(func() {
		for _, b := range all {
			b.Close()
		}
	})
	return all
}

func TestBackendContract(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := b.Get(ctx, "todos")
			assert.True(t, kv.IsNotFound(err), "missing key should be KeyNotFoundError, got %v", err)

			require.NoError(t, b.Set(ctx, "todos", []byte(`[{"id":1}]`)))
			got, err := b.Get(ctx, "todos")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":1}]`, string(got))

			// Last write wins
			require.NoError(t, b.Set(ctx, "todos", []byte(`[]`)))
			got, err = b.Get(ctx, "todos")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(got))

			// Keys are independent
			require.NoError(t, b.Set(ctx, "darkMode", []byte("true")))
			got, err = b.Get(ctx, "todos")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(got))

			require.NoError(t, b.Delete(ctx, "todos"))
			_, err = b.Get(ctx, "todos")
			assert.True(t, kv.IsNotFound(err))

			// Deleting again is not an error
			assert.NoError(t, b.Delete(ctx, "todos"))
		})
	}
}

func TestRedisBackendUsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	b := kv.NewRedisBackendWithClient(client, "checkmate:")
	defer b.Close()

	require.NoError(t, b.Set(context.Background(), "darkMode", []byte("false")))

	got, err := mr.Get("checkmate:darkMode")
	require.NoError(t, err)
	assert.Equal(t, "false", got)
}

func TestNewRedisBackendUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := kv.NewRedisBackend(context.Background(), kv.RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	ctx := context.Background()
	b := kv.NewMemoryBackend()

	value := []byte("abc")
	require.NoError(t, b.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileBackendRejectsPathKeys(t *testing.T) {
	b := kv.NewFileBackend(t.TempDir())

	err := b.Set(context.Background(), "../escape", []byte("x"))
	var invalid kv.InvalidKeyError
	assert.ErrorAs(t, err, &invalid)
}

func TestFileBackendWritesNamedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := kv.NewFileBackend(dir)

	require.NoError(t, b.Set(context.Background(), "todos", []byte("[]")))
	assert.FileExists(t, filepath.Join(dir, "todos.json"))
	assert.Equal(t, dir, b.BasePath())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	b, err := kv.Open(ctx, kv.Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &kv.FileBackend{}, b)

	b, err = kv.Open(ctx, kv.Options{Backend: kv.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &kv.MemoryBackend{}, b)

	b, err = kv.Open(ctx, kv.Options{
		Backend:   kv.BackendSQL,
		SQLDriver: "sqlite3",
		SQLDSN:    filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &kv.SQLBackend{}, b)
	b.Close()

	mr := miniredis.RunT(t)
	b, err = kv.Open(ctx, kv.Options{Backend: kv.BackendRedis, Redis: kv.RedisOptions{Addr: mr.Addr()}})
	require.NoError(t, err)
	assert.IsType(t, &kv.RedisBackend{}, b)
	b.Close()

	_, err = kv.Open(ctx, kv.Options{Backend: "etcd"})
	var unknown kv.UnknownBackendError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "etcd", unknown.Name)
}

func TestSQLBackendSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "checkmate.db")

	b, err := kv.NewSQLBackend(ctx, "sqlite3", dsn)
	require.NoError(t, err)
	require.NoError(t, b.Set(ctx, "darkMode", []byte("true")))
	require.NoError(t, b.Close())

	reopened, err := kv.NewSQLBackend(ctx, "sqlite3", dsn)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "darkMode")
	require.NoError(t, err)
	assert.Equal(t, "true", string(got))
}

func TestSQLBackendRequiresDSN(t *testing.T) {
	for _, driver := range []string{"sqlite3", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			_, err := kv.NewSQLBackend(context.Background(), driver, "")
			var missing kv.MissingDSNError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, driver, missing.Driver)
		})
	}
}

func TestFileBackendDeleteWrapsErrors(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory where the key's file should be cannot be removed.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "todos.json", "child"), 0o755))

	err := kv.NewFileBackend(dir).Delete(context.Background(), "todos")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete todos")
	assert.False(t, kv.IsNotFound(err))
}

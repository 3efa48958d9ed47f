package kv

import "context"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQL    = "sql"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string
	Dir       string
	Redis     RedisOptions
	SQLDriver string
	SQLDSN    string
}

// Open builds the backend named by opts.Backend. An empty name means file.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileBackend(opts.Dir), nil
	case BackendMemory:
		return NewMemoryBackend(), nil
	case BackendRedis:
		return NewRedisBackend(ctx, opts.Redis)
	case BackendSQL:
		return NewSQLBackend(ctx, opts.SQLDriver, opts.SQLDSN)
	default:
		return nil, UnknownBackendError{Name: opts.Backend}
	}
}

package kv

import "fmt"

// KeyNotFoundError indicates no value is stored under the key.
type KeyNotFoundError struct {
	Key string
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("key not found: %s", e.Key)
}

// UnknownBackendError indicates the configured backend name is not supported.
type UnknownBackendError struct {
	Name string
}

func (e UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown storage backend: %s (valid: file, memory, redis, sql)", e.Name)
}

// MissingDSNError indicates the sql backend was selected without a DSN.
type MissingDSNError struct {
	Driver string
}

func (e MissingDSNError) Error() string {
	return fmt.Sprintf("sql backend with driver %s requires a dsn", e.Driver)
}

// InvalidKeyError indicates a key that cannot be stored by the backend.
type InvalidKeyError struct {
	Key string
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key: %q", e.Key)
}

// Package storage provides the durable key/value store the repositories
// persist through. Each key holds a single string blob; higher layers own
// the encoding. The sqlite implementation is the real store, the memory
// implementation backs tests.
package storage

import "context"

// Store is a synchronous string-blob key/value store. Write must be durable
// before it returns; Read returns an empty string for absent keys.
type Store interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key string, value string) error
}

// Well-known keys. These mirror the browser local-storage entries of the
// original client, so an export of one maps one-to-one onto the other.
const (
	KeyUsers       = "auth_users"
	KeySession     = "auth_session"
	KeyCollections = "collections"
	KeyItems       = "items"
)

package storage

import (
	"context"
	"io"
)

type PutResult struct {
	Key      string
	Location string
	ETag     string
}

// ObjectStore stores published documents such as standings snapshots.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (*PutResult, error)
	PublicURL(key string) string
}

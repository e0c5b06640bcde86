package ticket

import (
	"context"
	"io"
)

// StoredBlob describes bytes written by a BlobStore.
type StoredBlob struct {
	Ref         string
	ContentType string
	Size        int64
}

// BlobStore keeps attachment bytes outside the database. Refs are opaque
// to the domain.
type BlobStore interface {
	Store(ctx context.Context, content io.Reader, fileName string) (*StoredBlob, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
}

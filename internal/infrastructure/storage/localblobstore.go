// Package storage keeps attachment bytes on the local filesystem.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"issuetracker/internal/domain/ticket"
	apperrors "issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

// sniffLen is how much of the head is buffered for content-type detection.
const sniffLen = 3072

// LocalBlobStore writes each blob to <dir>/<uuid>. Refs are the bare uuid,
// so a ref from the database can never name a path outside dir.
type LocalBlobStore struct {
	dir    string
	logger logger.Interface
}

func NewLocalBlobStore(dir string, logger logger.Interface) (*LocalBlobStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalBlobStore{dir: abs, logger: logger}, nil
}

func (s *LocalBlobStore) Store(ctx context.Context, content io.Reader, fileName string) (*ticket.StoredBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	ref := uuid.NewString()
	dst, err := s.path(ref)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0640)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob: %w", err)
	}
	size, copyErr := io.Copy(f, io.MultiReader(bytes.NewReader(head), content))
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("failed to write blob: %w", errors.Join(copyErr, closeErr))
	}

	contentType := detectContentType(head, fileName)
	s.logger.Debugw("blob stored", "ref", ref, "size", size, "content_type", contentType)

	return &ticket.StoredBlob{
		Ref:         ref,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *LocalBlobStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("blob not found")
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return f, nil
}

// Delete is idempotent: a missing blob is not an error.
func (s *LocalBlobStore) Delete(ctx context.Context, ref string) error {
	p, err := s.path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (s *LocalBlobStore) path(ref string) (string, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		return "", apperrors.NewNotFoundError("blob not found")
	}
	p := filepath.Join(s.dir, id.String())
	if !strings.HasPrefix(p, s.dir+string(filepath.Separator)) {
		return "", fmt.Errorf("blob path escapes upload directory: %s", ref)
	}
	return p, nil
}

// detectContentType trusts the bytes over the client-supplied name. For
// plain text the extension can narrow the type (e.g. .csv, .json).
func detectContentType(head []byte, fileName string) string {
	detected := mimetype.Detect(head)
	if detected.Is("text/plain") {
		if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
			if byExt := mimetype.Lookup(extensionTypes[ext]); byExt != nil {
				return byExt.String()
			}
		}
	}
	return detected.String()
}

var extensionTypes = map[string]string{
	".csv":  "text/csv",
	".json": "application/json",
	".md":   "text/markdown",
	".log":  "text/plain",
}

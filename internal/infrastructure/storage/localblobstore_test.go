package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "issuetracker/internal/shared/errors"
	"issuetracker/internal/shared/logger"
)

func newStore(t *testing.T) *LocalBlobStore {
	t.Helper()
	s, err := NewLocalBlobStore(t.TempDir(), logger.NewNopLogger())
	require.NoError(t, err)
	return s
}

func TestLocalBlobStore_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	blob, err := s.Store(ctx, strings.NewReader("hello world"), "greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(11), blob.Size)
	assert.True(t, strings.HasPrefix(blob.ContentType, "text/plain"), blob.ContentType)

	rc, err := s.Open(ctx, blob.Ref)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello world", string(data))

	require.NoError(t, s.Delete(ctx, blob.Ref))
	_, err = s.Open(ctx, blob.Ref)
	assert.True(t, apperrors.IsNotFoundError(err))

	require.NoError(t, s.Delete(ctx, blob.Ref), "deleting twice is fine")
}

func TestLocalBlobStore_LargerThanSniffBuffer(t *testing.T) {
	s := newStore(t)
	payload := bytes.Repeat([]byte{0x00, 0x01, 0x02, 0x03}, sniffLen)

	blob, err := s.Store(context.Background(), bytes.NewReader(payload), "data.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), blob.Size)

	stored, err := os.ReadFile(filepath.Join(s.dir, blob.Ref))
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestLocalBlobStore_DetectsByContent(t *testing.T) {
	s := newStore(t)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	blob, err := s.Store(context.Background(), bytes.NewReader(png), "not-really.txt")
	require.NoError(t, err)
	assert.Equal(t, "image/png", blob.ContentType)
}

func TestLocalBlobStore_EmptyBody(t *testing.T) {
	s := newStore(t)

	blob, err := s.Store(context.Background(), strings.NewReader(""), "empty")
	require.NoError(t, err)
	assert.Zero(t, blob.Size)
}

func TestLocalBlobStore_RejectsForeignRefs(t *testing.T) {
	s := newStore(t)
	outside := filepath.Join(filepath.Dir(s.dir), "secret")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0600))

	for _, ref := range []string{"../secret", "/etc/passwd", "", "not-a-uuid"} {
		_, err := s.Open(context.Background(), ref)
		assert.True(t, apperrors.IsNotFoundError(err), "ref %q", ref)
		assert.Error(t, s.Delete(context.Background(), ref))
	}
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

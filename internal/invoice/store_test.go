package invoice

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, "mem://", "https://cdn.example.com/files/")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	url, err := s.Put(ctx, "invoices/48213377/1.pdf", "application/pdf", strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/invoices/48213377/1.pdf", url)

	r, contentType, err := s.Open(ctx, "invoices/48213377/1.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "%PDF-1.7", string(body))
	assert.Equal(t, "application/pdf", contentType)

	require.NoError(t, s.Delete(ctx, url))
	_, _, err = s.Open(ctx, "invoices/48213377/1.pdf")
	require.Error(t, err)
}

func TestStore_DeleteForeignURL(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, "mem://", "https://cdn.example.com")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Delete(ctx, "https://elsewhere.example.com/a.pdf"))
}

func TestStore_FileBucket(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, "file://"+t.TempDir(), "/files")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	url, err := s.Put(ctx, "invoices/1/scan.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "/files/invoices/1/scan.png", url)
}

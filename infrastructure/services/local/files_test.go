package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindvault/application/ports"
)

func TestFileService_UploadCopiesAndExtracts(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "notes.md")
	require.NoError(t, os.WriteFile(src, []byte("# Heading\n\nSome notes."), 0o644))

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	svc := NewFileService(uploadDir)

	var progress []ports.UploadProgress
	upload, err := svc.Upload(context.Background(), src, func(p ports.UploadProgress) {
		progress = append(progress, p)
	})
	require.NoError(t, err)

	assert.NotEmpty(t, upload.ID)
	assert.Equal(t, "notes.md", upload.Name)
	assert.Equal(t, "text/markdown", upload.ContentType)
	assert.Equal(t, "# Heading\n\nSome notes.", upload.ExtractedContent)

	// The copy exists under the upload directory.
	copied, err := os.ReadFile(upload.URL)
	require.NoError(t, err)
	assert.Equal(t, "# Heading\n\nSome notes.", string(copied))

	require.NotEmpty(t, progress)
	last := progress[len(progress)-1]
	assert.Equal(t, float64(100), last.Percent)
	assert.Equal(t, upload.Size, last.Loaded)
}

func TestFileService_UploadBinaryNotExtracted(t *testing.T) {
	src := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4 fake"), 0o644))

	svc := NewFileService(filepath.Join(t.TempDir(), "uploads"))
	upload, err := svc.Upload(context.Background(), src, nil)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", upload.ContentType)
	assert.Empty(t, upload.ExtractedContent)
}

func TestFileService_UploadMissingSource(t *testing.T) {
	svc := NewFileService(t.TempDir())

	_, err := svc.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), nil)
	require.Error(t, err)
}

func TestFileService_UploadCancelled(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewFileService(filepath.Join(t.TempDir(), "uploads"))
	_, err := svc.Upload(ctx, src, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "text/markdown", contentTypeFor("a.MD"))
	assert.Equal(t, "text/plain", contentTypeFor("a.txt"))
	assert.Equal(t, "application/json", contentTypeFor("a.json"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("a.bin"))
}

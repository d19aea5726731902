package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"mindvault/application/ports"
)

// extractable file extensions and the cap on extracted content.
const maxExtractSize = 1 << 20

// FileService copies uploads into the local upload directory, reporting
// progress per chunk and extracting text content from plain-text formats.
type FileService struct {
	uploadDir string
}

// NewFileService creates a file service writing into uploadDir.
func NewFileService(uploadDir string) *FileService {
	return &FileService{uploadDir: uploadDir}
}

// Upload stores the file at path under the upload directory. onProgress,
// when non-nil, is invoked after every copied chunk and once at completion.
func (s *FileService) Upload(ctx context.Context, path string, onProgress ports.ProgressFunc) (ports.FileUpload, error) {
	src, err := os.Open(path)
	if err != nil {
		return ports.FileUpload{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return ports.FileUpload{}, fmt.Errorf("failed to stat upload: %w", err)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return ports.FileUpload{}, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New().String()
	name := filepath.Base(path)
	dest := filepath.Join(s.uploadDir, id+"-"+name)
	out, err := os.Create(dest)
	if err != nil {
		return ports.FileUpload{}, fmt.Errorf("failed to create upload target: %w", err)
	}
	defer out.Close()

	var copied int64
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			os.Remove(dest)
			return ports.FileUpload{}, err
		}
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				os.Remove(dest)
				return ports.FileUpload{}, fmt.Errorf("failed to write upload: %w", err)
			}
			copied += int64(n)
			report(onProgress, name, copied, info.Size())
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			os.Remove(dest)
			return ports.FileUpload{}, fmt.Errorf("failed to read upload: %w", readErr)
		}
	}
	report(onProgress, name, copied, info.Size())

	upload := ports.FileUpload{
		ID:          id,
		Name:        name,
		ContentType: contentTypeFor(name),
		Size:        copied,
		URL:         dest,
	}
	if extractable(name) && copied <= maxExtractSize {
		content, err := os.ReadFile(dest)
		if err == nil {
			upload.ExtractedContent = string(content)
		}
	}
	return upload, nil
}

func report(onProgress ports.ProgressFunc, name string, loaded, total int64) {
	if onProgress == nil {
		return
	}
	percent := 100.0
	if total > 0 {
		percent = float64(loaded) / float64(total) * 100
	}
	onProgress(ports.UploadProgress{FileName: name, Loaded: loaded, Total: total, Percent: percent})
}

func extractable(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return "text/markdown"
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	}
	return "application/octet-stream"
}

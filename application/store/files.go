package store

import (
	"context"

	"mindvault/application/ports"
	pkgerrors "mindvault/pkg/errors"
	"mindvault/pkg/result"
)

// ExportScope selects which slice of state an export covers.
type ExportScope string

const (
	ExportAll       ExportScope = "all"
	ExportKnowledge ExportScope = "knowledge"
	ExportLearning  ExportScope = "learning"
	ExportProfile   ExportScope = "profile"
)

// exportPayload is the full-state export document.
type exportPayload struct {
	User            any `json:"user"`
	KnowledgeNodes  any `json:"knowledgeNodes"`
	LearningRecords any `json:"learningRecords"`
	Skills          any `json:"skills"`
	Achievements    any `json:"achievements"`
}

// UploadFile streams the file at path through the file service. Progress
// callbacks are mirrored into the store's tracked upload progress, which
// is cleared once the upload settles either way.
func (s *Store) UploadFile(ctx context.Context, path string, onProgress ports.ProgressFunc) result.Result[ports.FileUpload] {
	s.setLoading(LoadUpload, true)
	defer s.setLoading(LoadUpload, false)
	defer func() {
		s.mu.Lock()
		s.uploadProgress = nil
		s.mu.Unlock()
		s.afterChange()
	}()

	track := func(p ports.UploadProgress) {
		s.mu.Lock()
		progress := p
		s.uploadProgress = &progress
		s.mu.Unlock()
		s.afterChange()
		if onProgress != nil {
			onProgress(p)
		}
	}

	return execute(s, ctx, "upload file",
		func(ctx context.Context) (ports.FileUpload, error) {
			return s.services.File.Upload(ctx, path, track)
		},
		nil)
}

// ExportData serializes the selected slice of state through the data
// service under a fixed per-scope filename.
func (s *Store) ExportData(ctx context.Context, scope ExportScope) error {
	s.setLoading(LoadExport, true)
	defer s.setLoading(LoadExport, false)

	s.mu.Lock()
	var data any
	var filename string
	switch scope {
	case ExportKnowledge:
		data = anySlice(s.nodes)
		filename = "knowledge-nodes.json"
	case ExportLearning:
		data = anySlice(s.records)
		filename = "learning-records.json"
	case ExportProfile:
		data = s.userCopyLocked()
		filename = "user-profile.json"
	default:
		data = exportPayload{
			User:            s.userCopyLocked(),
			KnowledgeNodes:  anySlice(s.nodes),
			LearningRecords: anySlice(s.records),
			Skills:          anySlice(s.skills),
			Achievements:    anySlice(s.achievements),
		}
		filename = "complete-data.json"
	}
	s.mu.Unlock()

	if err := s.services.Data.ExportData(ctx, data, filename); err != nil {
		appErr := pkgerrors.Wrap(err, "export failed")
		s.reportError(appErr)
		return appErr
	}
	return nil
}

func (s *Store) userCopyLocked() any {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return u
}

// anySlice copies a typed collection into a detached export payload.
func anySlice[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

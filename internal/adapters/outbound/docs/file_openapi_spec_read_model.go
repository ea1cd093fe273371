package docs

import (
	"context"
	"os"

	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

// FileOpenAPISpecReadModel serves the API contract straight from disk so the
// published document never drifts from the repository copy.
type FileOpenAPISpecReadModel struct {
	path string
}

var _ portsout.OpenAPISpecReadModel = (*FileOpenAPISpecReadModel)(nil)

func NewFileOpenAPISpecReadModel(path string) *FileOpenAPISpecReadModel {
	return &FileOpenAPISpecReadModel{
		path: path,
	}
}

func (r *FileOpenAPISpecReadModel) Read(_ context.Context) ([]byte, string, *apperrors.AppError) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, "", apperrors.NewInternal(
			"OPENAPI_FILE_READ_FAILED",
			"failed to read OpenAPI spec file",
			map[string]any{"path": r.path},
		)
	}

	return content, "application/yaml; charset=utf-8", nil
}
